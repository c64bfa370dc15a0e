package scene

import "iter"

// Walk calls f on n and its descendants depth first in pre-order.  When f
// returns false the children of that node are not visited.
func (n *Node) Walk(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(f)
	}
}

// PostOrder calls f on the descendants of n before n itself.
func (n *Node) PostOrder(f func(*Node)) {
	for _, c := range n.Children {
		c.PostOrder(f)
	}
	f(n)
}

// Visit walks the tree calling f before (isPost false) and after (isPost
// true) the children of each node.  Returning false on the pre visit skips
// the children; the post visit still happens.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// All returns a pre-order iterator over n and its descendants.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.all(yield)
	}
}

func (n *Node) all(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.all(yield) {
			return false
		}
	}
	return true
}
