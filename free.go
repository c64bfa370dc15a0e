package rib

import (
	"slices"

	"github.com/rib-format/go-rib/scene"
)

// Free releases the tree rooted at root, children before parents, and
// returns the number of nodes released.  A root with a parent is first
// detached from it.  Freeing nil or an already freed tree does nothing.
func Free(root *scene.Node) int {
	if root == nil || root.Freed() {
		return 0
	}
	detach(root)
	n := 0
	root.PostOrder(func(x *scene.Node) {
		x.Release()
		n++
	})
	return n
}

// detach removes n from the children of its parent.
func detach(n *scene.Node) {
	p := n.Parent
	if p == nil {
		return
	}
	p.Children = slices.DeleteFunc(p.Children, func(c *scene.Node) bool {
		return c == n
	})
	n.Parent = nil
}
