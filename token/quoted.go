package token

import (
	"fmt"
	"strings"
)

// Unquote decodes a double quoted RIB string.  It understands the escapes
// \n \r \t \b \f \\ \" and up to three octal digits, and drops a backslash
// newline pair.
func Unquote(b []byte) (string, error) {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return "", fmt.Errorf("%w string", ErrUnterminated)
	}
	b = b[1 : len(b)-1]
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i == len(b) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		switch c = b[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '\\', '"':
			sb.WriteByte(c)
		case '\n':
		default:
			if !isOctal(c) {
				return "", fmt.Errorf("%w: \\%c", ErrBadEscape, c)
			}
			v := 0
			j := i
			for ; j < len(b) && j < i+3 && isOctal(b[j]); j++ {
				v = v*8 + int(b[j]-'0')
			}
			if v > 0xff {
				return "", fmt.Errorf("%w: \\%s", ErrBadEscape, b[i:j])
			}
			sb.WriteByte(byte(v))
			i = j - 1
		}
	}
	return sb.String(), nil
}

// Quote returns s as a RIB string literal.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < ' ' || c == 0x7f {
				fmt.Fprintf(&sb, "\\%03o", c)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
