package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/rib-format/go-rib/scene"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the JSON merge patch that turns from into to.
func MergePatch(from, to *scene.Node) ([]byte, error) {
	a, err := json.Marshal(from)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

// Apply returns a new tree: root with the JSON merge patch applied.
func Apply(root *scene.Node, patch []byte) (*scene.Node, error) {
	d, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return decode(out)
}

// Patch returns a new tree: root with the JSON patch operations applied.
func Patch(root *scene.Node, ops []byte) (*scene.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("json patch: %w", err)
	}
	return decode(out)
}

func decode(d []byte) (*scene.Node, error) {
	res := &scene.Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Equal reports whether a and b have the same shape and payloads.
func Equal(a, b *scene.Node) bool {
	return a.Hash() == b.Hash()
}
