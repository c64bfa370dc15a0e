package parse

import (
	"errors"
	"fmt"

	"github.com/rib-format/go-rib/token"
)

var (
	ErrParse            = errors.New("parse error")
	ErrUnknownDirective = fmt.Errorf("%w: unknown directive", ErrParse)
	ErrArgs             = fmt.Errorf("%w: bad arguments", ErrParse)
	ErrParam            = fmt.Errorf("%w: bad parameter", ErrParse)
)

// ParseErr is an error located at a token.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func newParseErr(e error, p *token.Pos) *ParseErr {
	return &ParseErr{Err: e, Pos: *p}
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
