package driver

import "github.com/rib-format/go-rib/scene"

// Cursor tracks the node under which new nodes are linked.  Entered blocks
// are kept on an explicit stack whose bottom is the build root.
type Cursor struct {
	current *scene.Node
	stack   []*scene.Node
}

func NewCursor(root *scene.Node) *Cursor {
	return &Cursor{current: root}
}

func (c *Cursor) Current() *scene.Node {
	return c.current
}

// Enter makes n the current node.
func (c *Cursor) Enter(n *scene.Node) {
	c.stack = append(c.stack, c.current)
	c.current = n
}

// Leave returns to the node that was current before the last Enter.  At the
// build root it does nothing and returns false: unbalanced leaves keep the
// cursor at the root.
func (c *Cursor) Leave() bool {
	n := len(c.stack)
	if n == 0 {
		return false
	}
	c.current = c.stack[n-1]
	c.stack[n-1] = nil
	c.stack = c.stack[:n-1]
	return true
}

// AtRoot reports whether no block is open.
func (c *Cursor) AtRoot() bool {
	return len(c.stack) == 0
}

// Depth returns the number of open blocks.
func (c *Cursor) Depth() int {
	return len(c.stack)
}
