package token

import (
	"bytes"
	"fmt"
)

// Tokenize appends the tokens of src to dst.  On error the tokens read so
// far are returned along with a *TokenizeErr.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := &PosDoc{d: src}
	for i := range src {
		if src[i] == '\n' {
			doc.nl(i)
		}
	}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '#':
			j := bytes.IndexByte(src[i:], '\n')
			if j == -1 {
				j = n - i
			}
			dst = append(dst, Token{Type: TComment, Pos: doc.Pos(i), Bytes: src[i : i+j]})
			i += j
		case c == '[':
			dst = append(dst, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ']':
			dst = append(dst, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '"':
			j, err := quotedEnd(src, i, doc)
			if err != nil {
				return dst, err
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(i), Bytes: src[i:j]})
			i = j
		case c == '-' || c == '+' || c == '.' || isDigit(c):
			j, tt, err := numberEnd(src, i)
			if err != nil {
				return dst, NewTokenizeErr(err, doc.Pos(i))
			}
			dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: src[i:j]})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < n && isIdent(src[j]) {
				j++
			}
			dst = append(dst, Token{Type: TIdent, Pos: doc.Pos(i), Bytes: src[i:j]})
			i = j
		default:
			return dst, UnexpectedErr(fmt.Sprintf("%q", c), doc.Pos(i))
		}
	}
	return dst, nil
}

func quotedEnd(d []byte, i int, doc *PosDoc) (int, error) {
	j := i + 1
	for j < len(d) {
		switch d[j] {
		case '"':
			if _, err := Unquote(d[i : j+1]); err != nil {
				return 0, NewTokenizeErr(err, doc.Pos(i))
			}
			return j + 1, nil
		case '\\':
			j += 2
		case '\n':
			return 0, NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), doc.Pos(i))
		default:
			j++
		}
	}
	return 0, NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), doc.Pos(i))
}

func numberEnd(d []byte, i int) (int, TokenType, error) {
	n := len(d)
	j := i
	if d[j] == '-' || d[j] == '+' {
		j++
	}
	digits := 0
	for j < n && isDigit(d[j]) {
		j++
		digits++
	}
	tt := TInteger
	if j < n && d[j] == '.' {
		tt = TFloat
		j++
		for j < n && isDigit(d[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		return j, tt, fmt.Errorf("%w: no digits in %q", ErrNumber, d[i:j])
	}
	if j < n && (d[j] == 'e' || d[j] == 'E') {
		tt = TFloat
		j++
		if j < n && (d[j] == '-' || d[j] == '+') {
			j++
		}
		k := j
		for j < n && isDigit(d[j]) {
			j++
		}
		if j == k {
			return j, tt, fmt.Errorf("%w: empty exponent in %q", ErrNumber, d[i:j])
		}
	}
	if j < n && (isIdent(d[j]) || d[j] == '.') {
		return j, tt, fmt.Errorf("%w: %q followed by %q", ErrNumber, d[i:j], d[j])
	}
	return j, tt, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
