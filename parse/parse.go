package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rib-format/go-rib/debug"
	"github.com/rib-format/go-rib/driver"
	"github.com/rib-format/go-rib/scene"
	"github.com/rib-format/go-rib/token"
)

// Parse builds a tree from the RIB text d.  On error the tree built up to
// the failing directive is returned along with the error.
func Parse(d []byte, opts ...ParseOption) (*scene.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	drv := driver.New(pOpts.driverOpts...)
	err := drive(d, drv, pOpts)
	return drv.Root(), err
}

// Drive issues the construction calls of d on drv.
func Drive(d []byte, drv *driver.Driver, opts ...ParseOption) error {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return drive(d, drv, pOpts)
}

func drive(d []byte, drv *driver.Driver, opts *parseOpts) error {
	toks, err := token.Tokenize(nil, d)
	p := &parser{toks: noComments(toks), drv: drv, opts: opts}
	perr := p.run()
	if err == nil {
		return perr
	}
	// directives before the bad token still build; running out of
	// tokens is reported as the tokenize error
	if perr != nil && p.i < len(p.toks) {
		return perr
	}
	return err
}

func noComments(toks []token.Token) []token.Token {
	return slices.DeleteFunc(toks, func(t token.Token) bool {
		return t.Type == token.TComment
	})
}

type parser struct {
	toks []token.Token
	i    int
	drv  *driver.Driver
	opts *parseOpts
}

func (p *parser) run() error {
	for p.i < len(p.toks) {
		t := &p.toks[p.i]
		if t.Type != token.TIdent {
			return newParseErr(fmt.Errorf("%w: expected directive, got %s", ErrParse, t.Bytes), t.Pos)
		}
		p.i++
		name := string(t.Bytes)
		if debug.Parse() {
			debug.Logf("parse: %s at %d:%d\n", name, t.Pos.Line()+1, t.Pos.Col()+1)
		}
		f, ok := directives[name]
		if !ok {
			if err := p.unknown(t); err != nil {
				return err
			}
			continue
		}
		if err := f(p, t); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) unknown(t *token.Token) error {
	err := newParseErr(fmt.Errorf("%w %s", ErrUnknownDirective, t.Bytes), t.Pos)
	if p.opts.strict {
		return err
	}
	p.warn(err)
	for p.i < len(p.toks) && p.toks[p.i].Type != token.TIdent {
		p.i++
	}
	return nil
}

func (p *parser) warn(err error) {
	if p.opts.warn != nil {
		p.opts.warn(err)
	}
}

// reject handles a parameter the driver did not attach.
func (p *parser) reject(err error, at *token.Pos) error {
	perr := newParseErr(fmt.Errorf("%w: %w", ErrParam, err), at)
	if p.opts.strict {
		return perr
	}
	p.warn(perr)
	return nil
}

func (p *parser) peek() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) endPos() *token.Pos {
	if len(p.toks) == 0 {
		return (&token.PosDoc{}).Pos(0)
	}
	t := &p.toks[len(p.toks)-1]
	return t.Pos.D.Pos(t.End())
}

func (p *parser) expected(what string) error {
	t := p.peek()
	if t == nil {
		return newParseErr(fmt.Errorf("%w: expected %s, got end of input", ErrArgs, what), p.endPos())
	}
	return newParseErr(fmt.Errorf("%w: expected %s, got %s", ErrArgs, what, t.Bytes), t.Pos)
}

func (p *parser) number() (float64, error) {
	t := p.peek()
	if t == nil || !t.Type.IsNumber() {
		return 0, p.expected("number")
	}
	p.i++
	return t.Float()
}

func (p *parser) accept(tt token.TokenType) bool {
	t := p.peek()
	if t != nil && t.Type == tt {
		p.i++
		return true
	}
	return false
}

// floats reads n numbers, either bare or as a single bracketed array.
func (p *parser) floats(n int) ([]float64, error) {
	bracketed := p.accept(token.TLSquare)
	res := make([]float64, 0, n)
	for len(res) < n {
		f, err := p.number()
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	if bracketed && !p.accept(token.TRSquare) {
		return nil, p.expected(fmt.Sprintf("] after %d numbers", n))
	}
	return res, nil
}

// ints reads a bracketed integer array.  A single bare integer is read as
// an array of one.
func (p *parser) ints() ([]int, error) {
	if !p.accept(token.TLSquare) {
		t := p.peek()
		if t == nil || t.Type != token.TInteger {
			return nil, p.expected("integer array")
		}
		p.i++
		v, err := t.Int()
		if err != nil {
			return nil, err
		}
		return []int{v}, nil
	}
	res := []int{}
	for !p.accept(token.TRSquare) {
		t := p.peek()
		if t == nil || t.Type != token.TInteger {
			return nil, p.expected("integer or ]")
		}
		p.i++
		v, err := t.Int()
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// str reads a string, bare or as a single bracketed element.
func (p *parser) str() (string, error) {
	bracketed := p.accept(token.TLSquare)
	t := p.peek()
	if t == nil || t.Type != token.TString {
		return "", p.expected("string")
	}
	p.i++
	if bracketed && !p.accept(token.TRSquare) {
		return "", p.expected("]")
	}
	return t.String(), nil
}

type param struct {
	key     string
	decl    string
	pos     *token.Pos
	isStr   bool
	floats  []float64
	strings []string
}

// ParamKey returns the name declared by a parameter declaration, its last
// word: "color lightColor" declares lightColor.
func ParamKey(decl string) string {
	fs := strings.Fields(decl)
	if len(fs) == 0 {
		return ""
	}
	return fs[len(fs)-1]
}

func declIsString(decl string) bool {
	fs := strings.Fields(decl)
	return slices.Contains(fs[:max(0, len(fs)-1)], "string")
}

func (p *parser) params() ([]param, error) {
	var res []param
	for {
		t := p.peek()
		if t == nil || t.Type != token.TString {
			return res, nil
		}
		p.i++
		pr := param{decl: t.String(), pos: t.Pos}
		pr.key = ParamKey(pr.decl)
		if pr.key == "" {
			return nil, newParseErr(fmt.Errorf("%w: empty declaration", ErrParam), t.Pos)
		}
		if err := p.paramValue(&pr); err != nil {
			return nil, err
		}
		res = append(res, pr)
	}
}

func (p *parser) paramValue(pr *param) error {
	bracketed := p.accept(token.TLSquare)
	pr.isStr = declIsString(pr.decl)
	if bracketed {
		// "[]" is an empty value, not a missing one
		pr.floats, pr.strings = []float64{}, []string{}
	}
	n := 0
	for {
		t := p.peek()
		if t == nil {
			if bracketed {
				return p.expected("]")
			}
			break
		}
		if bracketed && t.Type == token.TRSquare {
			p.i++
			break
		}
		switch {
		case t.Type.IsNumber():
			if n > 0 && pr.isStr {
				return newParseErr(fmt.Errorf("%w: %s mixes strings and numbers", ErrParam, pr.key), t.Pos)
			}
			f, err := t.Float()
			if err != nil {
				return err
			}
			pr.isStr = false
			pr.floats = append(pr.floats, f)
		case t.Type == token.TString && bracketed:
			if n > 0 && !pr.isStr {
				return newParseErr(fmt.Errorf("%w: %s mixes strings and numbers", ErrParam, pr.key), t.Pos)
			}
			pr.isStr = true
			pr.strings = append(pr.strings, t.String())
		case t.Type == token.TString && n == 0:
			// a bare string right after the declaration is its value
			pr.isStr = true
			pr.strings = append(pr.strings, t.String())
		default:
			if bracketed {
				return p.expected("parameter value or ]")
			}
			if n == 0 {
				return p.expected(fmt.Sprintf("value for %s", pr.key))
			}
			return nil
		}
		p.i++
		n++
		if !bracketed {
			return nil
		}
	}
	if n == 0 && !bracketed {
		return p.expected(fmt.Sprintf("value for %s", pr.key))
	}
	return nil
}
