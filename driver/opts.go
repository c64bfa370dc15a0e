package driver

import "github.com/rib-format/go-rib/scene"

type driverOpts struct {
	root               *scene.Node
	keepRootTransforms bool
}

type Option func(*driverOpts)

// WithRoot makes the driver build under n instead of a fresh group.  n
// counts as the root even when it has a parent, so transforms issued
// directly under it are dropped unless KeepRootTransforms is given.
func WithRoot(n *scene.Node) Option {
	return func(o *driverOpts) { o.root = n }
}

// KeepRootTransforms links transforms issued outside of any block instead
// of dropping them.
func KeepRootTransforms() Option {
	return func(o *driverOpts) { o.keepRootTransforms = true }
}
