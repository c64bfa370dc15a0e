package driver

import (
	"github.com/rib-format/go-rib/debug"
	"github.com/rib-format/go-rib/scene"
)

type Driver struct {
	root   *scene.Node
	cursor *Cursor
	open   *scene.Node
	opts   driverOpts
}

func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, o := range opts {
		o(&d.opts)
	}
	root := d.opts.root
	if root == nil {
		root = scene.NewGroup()
	}
	d.Reset(root)
	return d
}

// Reset discards the cursor state and makes root the build root.
func (d *Driver) Reset(root *scene.Node) {
	d.root = root
	d.cursor = NewCursor(root)
	d.open = nil
}

func (d *Driver) Root() *scene.Node {
	return d.root
}

func (d *Driver) Current() *scene.Node {
	return d.cursor.Current()
}

// Depth returns the number of blocks entered and not yet left.
func (d *Driver) Depth() int {
	return d.cursor.Depth()
}

// Open returns the node accepting parameters: the node created by the last
// add call, or nil when the last call was a hierarchy call, a transform or
// a dropped node.
func (d *Driver) Open() *scene.Node {
	return d.open
}

// AddNode links a new group under the current node and enters it.
func (d *Driver) AddNode() *scene.Node {
	n := d.link(scene.NewGroup())
	d.cursor.Enter(n)
	d.open = nil
	return n
}

// SelectParent leaves the current block.  It returns false, leaving the
// cursor at the root, when no block is open.
func (d *Driver) SelectParent() bool {
	d.open = nil
	ok := d.cursor.Leave()
	if !ok && debug.Driver() {
		debug.Logf("driver: unbalanced block end at root\n")
	}
	return ok
}

func (d *Driver) link(n *scene.Node) *scene.Node {
	d.cursor.Current().Append(n)
	d.open = n
	if debug.Driver() {
		debug.Logf("driver: linked %s\n", n)
	}
	return n
}
