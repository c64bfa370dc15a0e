package token

import (
	"fmt"
	"io"
)

// Fprint writes one line per token: type, source bytes and 1 based
// line:col.
func Fprint(w io.Writer, toks []Token) error {
	for i := range toks {
		t := &toks[i]
		l, c := t.Pos.LineCol()
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%s\n", l+1, c+1, t.Type, t.Bytes); err != nil {
			return err
		}
	}
	return nil
}
