package driver

import "errors"

var (
	ErrNoTarget     = errors.New("no node to attach parameter to")
	ErrTypeMismatch = errors.New("parameter does not match last node")
)
