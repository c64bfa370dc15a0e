package rib

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"
)

// Holder owns the current tree of a host.  Root may be called from any
// goroutine; Rebuild, Replace and Close are serialized.  A root obtained
// from Root must not be used after the next successful Rebuild or Replace,
// which frees it.
type Holder struct {
	mu   sync.Mutex
	root atomic.Pointer[scene.Node]
	gen  atomic.Uint64
	hash uint64

	opts []parse.ParseOption
	log  *slog.Logger
}

type HolderOption func(*Holder)

// HolderParseOptions sets the options of every build.
func HolderParseOptions(opts ...parse.ParseOption) HolderOption {
	return func(h *Holder) { h.opts = append(h.opts, opts...) }
}

func HolderLogger(l *slog.Logger) HolderOption {
	return func(h *Holder) { h.log = l }
}

func NewHolder(opts ...HolderOption) *Holder {
	h := &Holder{log: slog.Default()}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Root returns the current tree, nil before the first successful build.
func (h *Holder) Root() *scene.Node {
	return h.root.Load()
}

// Generation counts the adoptions that changed the tree.
func (h *Holder) Generation() uint64 {
	return h.gen.Load()
}

// Rebuild parses path into a fresh tree.  On success the fresh tree
// replaces the current one, which is then freed.  On failure the current
// tree is kept and the status and error are returned.
func (h *Holder) Rebuild(path string) (Status, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, root, err := build(path, h.opts)
	if err != nil {
		h.log.Error("rebuild failed", "path", path, "status", st.String(), "error", err)
		return st, err
	}
	changed := h.adopt(root)
	h.log.Info("rebuilt", "path", path, "nodes", root.Count(), "changed", changed, "generation", h.Generation())
	return st, nil
}

// Replace adopts root as the current tree and frees the previous one.  A
// root with a parent, such as a subtree of the current tree, is detached
// from it first.
func (h *Holder) Replace(root *scene.Node) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.adopt(root)
}

// Close frees the current tree.
func (h *Holder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	old := h.root.Swap(nil)
	h.hash = 0
	Free(old)
}

// adopt publishes root, detaching it first so that freeing the previous
// tree cannot reach it.
func (h *Holder) adopt(root *scene.Node) bool {
	var sum uint64
	if root != nil {
		detach(root)
		sum = root.Hash()
	}
	old := h.root.Swap(root)
	changed := (old == nil) != (root == nil) || sum != h.hash
	h.hash = sum
	if changed {
		h.gen.Add(1)
	}
	if old != root {
		Free(old)
	}
	return changed
}
