package encode

import (
	"strconv"
	"strings"

	"github.com/rib-format/go-rib/scene"
)

// Field is a named value of a payload, rendered as text.
type Field struct {
	Name  string
	Value string
}

// Fields returns the scalar and array fields of p in declaration order.
// Parameters of blocks and meshes are not included; see Params.
func Fields(p scene.Payload) []Field {
	switch p := p.(type) {
	case *scene.Translate:
		return floats("x", p.X, "y", p.Y, "z", p.Z)
	case *scene.Rotate:
		return floats("angle", p.Angle, "x", p.X, "y", p.Y, "z", p.Z)
	case *scene.Scale:
		return floats("x", p.X, "y", p.Y, "z", p.Z)
	case *scene.ConcatTransform:
		return []Field{{"matrix", FloatList(p.Matrix[:])}}
	case *scene.Sphere:
		return floats("radius", p.Radius, "zmin", p.ZMin, "zmax", p.ZMax, "thetamax", p.ThetaMax)
	case *scene.Cone:
		return floats("height", p.Height, "radius", p.Radius, "thetamax", p.ThetaMax)
	case *scene.Cylinder:
		return floats("radius", p.Radius, "zmin", p.ZMin, "zmax", p.ZMax, "thetamax", p.ThetaMax)
	case *scene.Hyperboloid:
		return floats("x1", p.X1, "y1", p.Y1, "z1", p.Z1, "x2", p.X2, "y2", p.Y2, "z2", p.Z2, "thetamax", p.ThetaMax)
	case *scene.Paraboloid:
		return floats("rmax", p.RMax, "zmin", p.ZMin, "zmax", p.ZMax, "thetamax", p.ThetaMax)
	case *scene.Disk:
		return floats("height", p.Height, "radius", p.Radius, "thetamax", p.ThetaMax)
	case *scene.Torus:
		return floats("rmajor", p.RMajor, "rminor", p.RMinor, "phimin", p.PhiMin, "phimax", p.PhiMax, "thetamax", p.ThetaMax)
	case *scene.PointsGeneralPolygons:
		return []Field{{"nloops", IntList(p.NLoops)}, {"nvertices", IntList(p.NVertices)}, {"vertices", IntList(p.Vertices)}}
	case *scene.PointsPolygons:
		return []Field{{"nvertices", IntList(p.NVertices)}, {"vertices", IntList(p.Vertices)}}
	case *scene.Attribute:
		return []Field{{"name", strconv.Quote(p.Name)}}
	case scene.Block:
		return []Field{{"type", strconv.Quote(p.Class())}, {"name", strconv.Quote(p.Ident())}}
	}
	return nil
}

// Params returns the parameters of a block or mesh payload sorted by key,
// float parameters first.
func Params(p scene.Payload) []Field {
	var res []Field
	switch p := p.(type) {
	case scene.Block:
		ps := p.ParamSet()
		for _, k := range ps.Floats.Keys() {
			res = append(res, Field{k, FloatList(ps.Floats[k])})
		}
		for _, k := range ps.Strings.Keys() {
			res = append(res, Field{k, StringList(ps.Strings[k])})
		}
	case scene.Mesh:
		fs := *p.FloatParams()
		for _, k := range fs.Keys() {
			res = append(res, Field{k, FloatList(fs[k])})
		}
	}
	return res
}

func floats(kv ...any) []Field {
	res := make([]Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		res = append(res, Field{kv[i].(string), Float(kv[i+1].(float64))})
	}
	return res
}

// Float formats f with the fewest digits that read back to f.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func FloatList(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = Float(f)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func IntList(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func StringList(v []string) string {
	parts := make([]string, len(v))
	for i, s := range v {
		parts[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
