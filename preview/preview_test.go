package preview

import (
	"testing"

	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func requireV3(t *testing.T, want, got V3) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func bounds(t *testing.T, src string) Bounds {
	t.Helper()
	root, err := parse.Parse([]byte(src))
	require.NoError(t, err)
	return BoundsOf(root, NewSampler(9, 9))
}

func TestUnitSphereBounds(t *testing.T) {
	b := bounds(t, "Sphere 1 -1 1 360")
	require.False(t, b.Empty())
	require.Equal(t, 81, b.Count())
	requireV3(t, V3{-1, -1, -1}, b.Min)
	requireV3(t, V3{1, 1, 1}, b.Max)
}

func TestTransformScopes(t *testing.T) {
	src := `AttributeBegin
  Translate 10 0 0
  AttributeBegin
    Scale 2 2 2
    Sphere 1 -1 1 360
  AttributeEnd
  Sphere 1 -1 1 360
AttributeEnd
Sphere 1 -1 1 360
`
	root, err := parse.Parse([]byte(src))
	require.NoError(t, err)
	shapes := Sample(root, NewSampler(9, 9))
	require.Len(t, shapes, 3)

	var scaled, moved, plain Bounds
	for _, p := range shapes[0].Points {
		scaled.Add(p)
	}
	for _, p := range shapes[1].Points {
		moved.Add(p)
	}
	for _, p := range shapes[2].Points {
		plain.Add(p)
	}
	requireV3(t, V3{8, -2, -2}, scaled.Min)
	requireV3(t, V3{12, 2, 2}, scaled.Max)
	requireV3(t, V3{9, -1, -1}, moved.Min)
	requireV3(t, V3{11, 1, 1}, moved.Max)
	requireV3(t, V3{-1, -1, -1}, plain.Min)
	requireV3(t, V3{1, 1, 1}, plain.Max)
}

func TestTransformOrder(t *testing.T) {
	// the last transform applies to the shape first
	b := bounds(t, "AttributeBegin\nTranslate 1 0 0\nScale 2 2 2\nSphere 1 -1 1 360\nAttributeEnd")
	requireV3(t, V3{-1, -2, -2}, b.Min)
	requireV3(t, V3{3, 2, 2}, b.Max)
}

func TestRotate(t *testing.T) {
	var m M4
	m.Rotate(90, V3{0, 0, 1})
	requireV3(t, V3{0, 1, 0}, m.Point(V3{1, 0, 0}))
	m.Rotate(180, V3{0, 2, 0})
	requireV3(t, V3{-1, 0, 0}, m.Point(V3{1, 0, 0}))
	m.Rotate(30, V3{})
	requireV3(t, V3{1, 2, 3}, m.Point(V3{1, 2, 3}))
}

func TestConcatTransform(t *testing.T) {
	b := bounds(t, "AttributeBegin\nConcatTransform [1 0 0 0  0 1 0 0  0 0 1 0  5 6 7 1]\nPointsPolygons [3] [0 1 2] \"P\" [0 0 0 1 0 0 0 1 0]\nAttributeEnd")
	require.Equal(t, 3, b.Count())
	requireV3(t, V3{5, 6, 7}, b.Min)
	requireV3(t, V3{6, 7, 7}, b.Max)
}

func TestShapes(t *testing.T) {
	tests := []struct {
		src      string
		min, max V3
	}{
		{"Cylinder 2 -1 3 360", V3{-2, -2, -1}, V3{2, 2, 3}},
		{"Disk 4 1 360", V3{-1, -1, 4}, V3{1, 1, 4}},
		{"Cone 2 1 360", V3{-1, -1, 0}, V3{1, 1, 2}},
		{"Paraboloid 1 0 4 360", V3{-1, -1, 0}, V3{1, 1, 4}},
		{"Torus 2 0.5 0 360 360", V3{-2.5, -2.5, -0.5}, V3{2.5, 2.5, 0.5}},
		{"Hyperboloid 1 0 -1 1 0 1 360", V3{-1, -1, -1}, V3{1, 1, 1}},
		{"Sphere 1 -1 1 90", V3{0, 0, -1}, V3{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			b := bounds(t, tt.src)
			requireV3(t, tt.min, b.Min)
			requireV3(t, tt.max, b.Max)
		})
	}
}

func TestJitter(t *testing.T) {
	s := NewSampler(4, 4, Jitter(7))
	pts := s.Points(&scene.Sphere{Radius: 1, ZMin: -1, ZMax: 1, ThetaMax: 360})
	require.Len(t, pts, 16)
	again := NewSampler(4, 4, Jitter(7)).Points(&scene.Sphere{Radius: 1, ZMin: -1, ZMax: 1, ThetaMax: 360})
	require.Equal(t, pts, again)
	for _, p := range pts {
		require.InDelta(t, 1, p[0]*p[0]+p[1]*p[1]+p[2]*p[2], eps)
	}
}

func TestNoSamples(t *testing.T) {
	s := NewSampler(3, 3)
	require.Nil(t, s.Points(scene.NewAttribute("x")))
	b := BoundsOf(scene.NewGroup(), s)
	require.True(t, b.Empty())
}
