package scene

import "errors"

var (
	ErrDuplicateParam = errors.New("duplicate parameter")
	ErrUnknownType    = errors.New("unknown node type")
)
