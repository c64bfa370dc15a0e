package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TIdent TokenType = iota
	TInteger
	TFloat
	TString
	TLSquare
	TRSquare
	TComment
)

var tokenTypeNames = map[TokenType]string{
	TIdent:   "TIdent",
	TInteger: "TInteger",
	TFloat:   "TFloat",
	TString:  "TString",
	TLSquare: "TLSquare",
	TRSquare: "TRSquare",
	TComment: "TComment",
}

func (t TokenType) String() string {
	return tokenTypeNames[t]
}

// IsNumber reports whether t is TInteger or TFloat.
func (t TokenType) IsNumber() bool {
	return t == TInteger || t == TFloat
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the value of a string token without quotes and escapes,
// and the source bytes of any other token.
func (t *Token) String() string {
	if t.Type == TString {
		s, _ := Unquote(t.Bytes)
		return s
	}
	return string(t.Bytes)
}

// Float returns the value of a number token.
func (t *Token) Float() (float64, error) {
	if !t.Type.IsNumber() {
		return 0, ExpectedErr("number", t.Pos)
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		return 0, NewTokenizeErr(fmt.Errorf("%w: %w", ErrNumber, err), t.Pos)
	}
	return f, nil
}

// Int returns the value of an integer token.
func (t *Token) Int() (int, error) {
	if t.Type != TInteger {
		return 0, ExpectedErr("integer", t.Pos)
	}
	i, err := strconv.Atoi(string(t.Bytes))
	if err != nil {
		return 0, NewTokenizeErr(fmt.Errorf("%w: %w", ErrNumber, err), t.Pos)
	}
	return i, nil
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
