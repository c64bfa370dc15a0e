package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rib-format/go-rib/debug"
	"github.com/rib-format/go-rib/scene"
)

type Query struct {
	src string
	prg *vm.Program
}

// Compile checks src against [Env] and requires a boolean result.
func Compile(src string) (*Query, error) {
	opts := append(exprOpts(), expr.Env(&Env{}), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

func (q *Query) Match(n *scene.Node) (bool, error) {
	env, err := NewEnv(n)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("query on %s: %w", n.Path(), err)
	}
	return res.(bool), nil
}

// Select returns the nodes under root, root included, that match q in
// pre-order.
func (q *Query) Select(root *scene.Node) ([]*scene.Node, error) {
	var res []*scene.Node
	for n := range root.All() {
		ok, err := q.Match(n)
		if err != nil {
			return nil, err
		}
		if debug.Query() {
			debug.Logf("query %q on %s: %t\n", q.src, n, ok)
		}
		if ok {
			res = append(res, n)
		}
	}
	return res, nil
}

// Select compiles src and applies it to root.
func Select(root *scene.Node, src string) ([]*scene.Node, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("family", func(params ...any) (any, error) {
			return family(params[0].(string))
		},
			new(func(string) string)),
		expr.Function("len3", func(params ...any) (any, error) {
			return len(params[0].([]float64)) / 3, nil
		},
			new(func([]float64) int)),
	}
}

func family(name string) (string, error) {
	var t scene.Type
	if err := t.UnmarshalText([]byte(name)); err != nil {
		return "", err
	}
	switch {
	case t == scene.GroupType:
		return "group", nil
	case t.IsTransform():
		return "transform", nil
	case t.IsQuadric():
		return "quadric", nil
	case t.IsMesh():
		return "mesh", nil
	}
	return "attribute", nil
}
