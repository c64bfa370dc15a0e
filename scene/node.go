package scene

import (
	"strconv"
	"strings"
)

type Node struct {
	Parent   *Node
	Children []*Node

	typ     Type
	payload Payload
	freed   bool
}

// New creates a detached node carrying p.  A nil payload makes a group.
func New(p Payload) *Node {
	if p == nil {
		return NewGroup()
	}
	return &Node{typ: p.Type(), payload: p}
}

func NewGroup() *Node {
	return &Node{typ: GroupType}
}

func (n *Node) Type() Type {
	return n.typ
}

// Payload returns the variant data of n, nil for groups.
func (n *Node) Payload() Payload {
	return n.payload
}

// Append links c as the last child of n.
func (n *Node) Append(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

// Last returns the most recently appended child of n, or nil.
func (n *Node) Last() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

func (n *Node) Clone() *Node {
	res := &Node{typ: n.typ, payload: clonePayload(n.payload)}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
	}
	for i, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children[i] = cc
	}
	return res
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Index returns the position of n among its parent's children, -1 for
// a root or a node its parent does not own.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Path returns a slash separated path from the root to n where each
// element is the node type and its child index, e.g. /Group[0]/Sphere[1].
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/"
	}
	var parts []string
	for x := n; x.Parent != nil; x = x.Parent {
		parts = append(parts, x.typ.String()+"["+strconv.Itoa(x.Index())+"]")
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	c := 0
	n.Walk(func(*Node) bool {
		c++
		return true
	})
	return c
}

// Release drops the links and parameter storage of n.  It must only be
// called once every child of n has been released.  The type of n stays
// readable.
func (n *Node) Release() {
	switch p := n.payload.(type) {
	case Block:
		p.ParamSet().clear()
	case Mesh:
		*p.FloatParams() = nil
	}
	n.Children = nil
	n.Parent = nil
	n.freed = true
}

// Freed reports whether n has been released.
func (n *Node) Freed() bool {
	return n.freed
}
