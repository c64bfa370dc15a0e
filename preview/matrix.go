package preview

import "github.com/chewxy/math32"

type V3 [3]float32

// V4 is a homogeneous vector.
type V4 [4]float32

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var res M4
	for i := range res {
		for j := range res {
			for k := range res {
				res[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = res
}

// Translate sets m to a translation by (x, y, z).
func (m *M4) Translate(x, y, z float32) {
	m.I()
	m[3] = V4{x, y, z, 1}
}

// Scale sets m to a scale by (x, y, z).
func (m *M4) Scale(x, y, z float32) {
	*m = M4{{x}, {0, y}, {0, 0, z}, {0, 0, 0, 1}}
}

// Rotate sets m to a rotation of angle degrees about axis.  A zero axis
// gives the identity.
func (m *M4) Rotate(angle float32, axis V3) {
	l := math32.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if l == 0 {
		m.I()
		return
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l
	a := radians(angle)
	s, c := math32.Sin(a), math32.Cos(a)
	t := 1 - c
	*m = M4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// SetRows sets m from 16 values listed row by row in the row vector
// convention of RIB, where the translation is in the last row.
func (m *M4) SetRows(v [16]float64) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = float32(v[4*i+j])
		}
	}
}

// Point transforms p as a point.
func (m *M4) Point(p V3) V3 {
	var res V3
	for j := range res {
		res[j] = m[0][j]*p[0] + m[1][j]*p[1] + m[2][j]*p[2] + m[3][j]
	}
	return res
}

func radians(d float32) float32 {
	return d * math32.Pi / 180
}
