package query

import (
	"encoding/json"

	"github.com/rib-format/go-rib/scene"
)

// Env is what a predicate sees of one node.
type Env struct {
	Type     string
	Path     string
	Depth    int
	Index    int
	Children int
	// Name is the name of an attribute or shader block, Class the type of
	// a shader block.
	Name  string
	Class string
	// Fields holds the payload fields by their JSON names, parameters
	// excluded.
	Fields map[string]any

	node *scene.Node
}

func NewEnv(n *scene.Node) (*Env, error) {
	env := &Env{
		Type:     n.Type().String(),
		Path:     n.Path(),
		Depth:    n.Depth(),
		Index:    n.Index(),
		Children: len(n.Children),
		Fields:   map[string]any{},
		node:     n,
	}
	p := n.Payload()
	if b, ok := p.(scene.Block); ok {
		env.Name = b.Ident()
		env.Class = b.Class()
	}
	if p != nil {
		d, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(d, &env.Fields); err != nil {
			return nil, err
		}
		delete(env.Fields, "params")
	}
	return env, nil
}

// Param returns the float parameter key of a block or mesh, nil if absent.
func (e *Env) Param(key string) []float64 {
	switch p := e.node.Payload().(type) {
	case scene.Block:
		return p.ParamSet().Floats[key]
	case scene.Mesh:
		return (*p.FloatParams())[key]
	}
	return nil
}

// StringParam returns the string parameter key of a block, nil if absent.
func (e *Env) StringParam(key string) []string {
	if b, ok := e.node.Payload().(scene.Block); ok {
		return b.ParamSet().Strings[key]
	}
	return nil
}

func (e *Env) HasParam(key string) bool {
	switch p := e.node.Payload().(type) {
	case scene.Block:
		ps := p.ParamSet()
		_, f := ps.Floats[key]
		_, s := ps.Strings[key]
		return f || s
	case scene.Mesh:
		_, ok := (*p.FloatParams())[key]
		return ok
	}
	return false
}

// Node returns the node the environment describes.
func (e *Env) Node() *scene.Node {
	return e.node
}
