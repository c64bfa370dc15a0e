package parse

import (
	"github.com/rib-format/go-rib/driver"
	"github.com/rib-format/go-rib/scene"
	"github.com/rib-format/go-rib/token"
)

type parseOpts struct {
	strict     bool
	positions  map[*scene.Node]*token.Pos
	ends       map[*scene.Node]*token.Pos
	warn       func(error)
	driverOpts []driver.Option
}

type ParseOption func(*parseOpts)

// ParseStrict makes unknown directives and rejected parameters fail the
// parse.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParsePositions records the position of the directive that created each
// node in m.
func ParsePositions(m map[*scene.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// ParseBlockEnds records the position of the directive closing each group
// in m.
func ParseBlockEnds(m map[*scene.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.ends = m }
}

// ParseWarnings calls f with the problems that do not fail a non strict
// parse: skipped directives and rejected parameters.
func ParseWarnings(f func(error)) ParseOption {
	return func(o *parseOpts) { o.warn = f }
}

// ParseDriverOptions passes opts to the driver created by [Parse].
func ParseDriverOptions(opts ...driver.Option) ParseOption {
	return func(o *parseOpts) { o.driverOpts = append(o.driverOpts, opts...) }
}

func (o *parseOpts) trackPos(n *scene.Node, p *token.Pos) {
	if o.positions != nil && n != nil {
		o.positions[n] = p
	}
}
