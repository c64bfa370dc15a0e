package preview

import (
	"github.com/chewxy/math32"
	"github.com/rib-format/go-rib/scene"
)

// Shape is the world space sampling of one node.
type Shape struct {
	Node   *scene.Node
	Points []V3
}

// Sample walks root depth first and returns the world space samples of
// every quadric and mesh under it, in tree order.
func Sample(root *scene.Node, s *Sampler) []Shape {
	var ctm M4
	ctm.I()
	var res []Shape
	sampleGroup(root, ctm, s, &res)
	return res
}

// sampleGroup gets its own copy of ctm; transforms inside g do not leak
// out of it.
func sampleGroup(g *scene.Node, ctm M4, s *Sampler, res *[]Shape) {
	for _, c := range g.Children {
		t := c.Type()
		switch {
		case t == scene.GroupType:
			sampleGroup(c, ctm, s, res)
		case t.IsTransform():
			m := Matrix(c.Payload())
			ctm.Mul(&ctm, &m)
		default:
			pts := s.Points(c.Payload())
			if len(pts) == 0 {
				continue
			}
			for i := range pts {
				pts[i] = ctm.Point(pts[i])
			}
			*res = append(*res, Shape{Node: c, Points: pts})
		}
	}
}

// Matrix returns the matrix of a transform payload, the identity for any
// other payload.
func Matrix(p scene.Payload) M4 {
	var m M4
	switch p := p.(type) {
	case *scene.Translate:
		m.Translate(f32(p.X), f32(p.Y), f32(p.Z))
	case *scene.Rotate:
		m.Rotate(f32(p.Angle), V3{f32(p.X), f32(p.Y), f32(p.Z)})
	case *scene.Scale:
		m.Scale(f32(p.X), f32(p.Y), f32(p.Z))
	case *scene.ConcatTransform:
		m.SetRows(p.Matrix)
	default:
		m.I()
	}
	return m
}

// Bounds is an axis aligned box.  The zero value is empty.
type Bounds struct {
	Min, Max V3
	n        int
}

func (b *Bounds) Empty() bool {
	return b.n == 0
}

func (b *Bounds) Add(p V3) {
	if b.n == 0 {
		b.Min, b.Max = p, p
	}
	b.n++
	for i := range p {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

// Count returns the number of points added.
func (b *Bounds) Count() int {
	return b.n
}

// Center returns the middle of the box.
func (b *Bounds) Center() V3 {
	return V3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// BoundsOf returns the bounds of the samples of root.
func BoundsOf(root *scene.Node, s *Sampler) Bounds {
	var b Bounds
	for _, sh := range Sample(root, s) {
		for _, p := range sh.Points {
			b.Add(p)
		}
	}
	return b
}
