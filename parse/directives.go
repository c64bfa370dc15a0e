package parse

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rib-format/go-rib/driver"
	"github.com/rib-format/go-rib/scene"
	"github.com/rib-format/go-rib/token"
)

type directive func(p *parser, t *token.Token) error

var directives map[string]directive

func init() {
	directives = map[string]directive{
		"AttributeBegin": begin,
		"AttributeEnd":   end,
		"TransformBegin": begin,
		"TransformEnd":   end,
		"WorldBegin":     begin,
		"WorldEnd":       end,
		"FrameBegin":     frameBegin,
		"FrameEnd":       end,

		"Translate":       transform(3, func(d *driver.Driver, v []float64) *scene.Node { return d.AddTranslate(v[0], v[1], v[2]) }),
		"Rotate":          transform(4, func(d *driver.Driver, v []float64) *scene.Node { return d.AddRotate(v[0], v[1], v[2], v[3]) }),
		"Scale":           transform(3, func(d *driver.Driver, v []float64) *scene.Node { return d.AddScale(v[0], v[1], v[2]) }),
		"ConcatTransform": transform(16, func(d *driver.Driver, v []float64) *scene.Node { return d.AddConcatTransform([16]float64(v)) }),

		"Sphere": quadric(4, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddSphere(v[0], v[1], v[2], v[3])
		}),
		"Cone": quadric(3, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddCone(v[0], v[1], v[2])
		}),
		"Cylinder": quadric(4, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddCylinder(v[0], v[1], v[2], v[3])
		}),
		"Hyperboloid": quadric(7, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddHyperboloid(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
		}),
		"Paraboloid": quadric(4, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddParaboloid(v[0], v[1], v[2], v[3])
		}),
		"Disk": quadric(3, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddDisk(v[0], v[1], v[2])
		}),
		"Torus": quadric(5, func(d *driver.Driver, v []float64) *scene.Node {
			return d.AddTorus(v[0], v[1], v[2], v[3], v[4])
		}),

		"PointsGeneralPolygons": pointsGeneralPolygons,
		"PointsPolygons":        pointsPolygons,

		"Attribute": attribute,
		"Pattern": shader(
			(*driver.Driver).AddPattern,
			(*driver.Driver).AddPatternFloatParam,
			(*driver.Driver).AddPatternStringParam),
		"Bxdf": shader(
			(*driver.Driver).AddBxdf,
			(*driver.Driver).AddBxdfFloatParam,
			(*driver.Driver).AddBxdfStringParam),
		"Light": shader(
			(*driver.Driver).AddLight,
			(*driver.Driver).AddLightFloatParam,
			(*driver.Driver).AddLightStringParam),
	}
	directives["LightSource"] = directives["Light"]
}

// Directives returns the names of the recognized directives, sorted.
func Directives() []string {
	return slices.Sorted(maps.Keys(directives))
}

// IsDirective reports whether name is a recognized directive.
func IsDirective(name string) bool {
	_, ok := directives[name]
	return ok
}

func begin(p *parser, t *token.Token) error {
	p.opts.trackPos(p.drv.AddNode(), t.Pos)
	return nil
}

func frameBegin(p *parser, t *token.Token) error {
	if _, err := p.number(); err != nil {
		return err
	}
	return begin(p, t)
}

func end(p *parser, t *token.Token) error {
	cur := p.drv.Current()
	if p.drv.SelectParent() && p.opts.ends != nil {
		p.opts.ends[cur] = t.Pos
	}
	return nil
}

func transform(n int, add func(*driver.Driver, []float64) *scene.Node) directive {
	return func(p *parser, t *token.Token) error {
		v, err := p.floats(n)
		if err != nil {
			return err
		}
		p.opts.trackPos(add(p.drv, v), t.Pos)
		return nil
	}
}

func quadric(n int, add func(*driver.Driver, []float64) *scene.Node) directive {
	return func(p *parser, t *token.Token) error {
		v, err := p.floats(n)
		if err != nil {
			return err
		}
		node := add(p.drv, v)
		p.opts.trackPos(node, t.Pos)
		params, err := p.params()
		if err != nil {
			return err
		}
		for i := range params {
			pr := &params[i]
			rej := fmt.Errorf("%w: %s parameter %q", driver.ErrTypeMismatch, node.Type(), pr.key)
			if err := p.reject(rej, pr.pos); err != nil {
				return err
			}
		}
		return nil
	}
}

func pointsGeneralPolygons(p *parser, t *token.Token) error {
	nloops, err := p.ints()
	if err != nil {
		return err
	}
	nverts, err := p.ints()
	if err != nil {
		return err
	}
	verts, err := p.ints()
	if err != nil {
		return err
	}
	p.opts.trackPos(p.drv.AddPGP(nloops, nverts, verts), t.Pos)
	return p.meshParams(p.drv.AddPGPParam)
}

func pointsPolygons(p *parser, t *token.Token) error {
	nverts, err := p.ints()
	if err != nil {
		return err
	}
	verts, err := p.ints()
	if err != nil {
		return err
	}
	p.opts.trackPos(p.drv.AddPP(nverts, verts), t.Pos)
	return p.meshParams(p.drv.AddPPParam)
}

func (p *parser) meshParams(add func(string, []float64) error) error {
	params, err := p.params()
	if err != nil {
		return err
	}
	for i := range params {
		pr := &params[i]
		if pr.isStr {
			err = fmt.Errorf("%w: string parameter %q on a mesh", driver.ErrTypeMismatch, pr.key)
		} else {
			err = add(pr.key, pr.floats)
		}
		if err == nil {
			continue
		}
		if rerr := p.reject(err, pr.pos); rerr != nil {
			return rerr
		}
	}
	return nil
}

func attribute(p *parser, t *token.Token) error {
	name, err := p.str()
	if err != nil {
		return err
	}
	p.opts.trackPos(p.drv.AddAttribute(name), t.Pos)
	return p.blockParams((*driver.Driver).AddAttrFloatParam, (*driver.Driver).AddAttrStringParam)
}

type (
	addShader   func(d *driver.Driver, itemType, name string) *scene.Node
	floatParam  func(d *driver.Driver, key string, v []float64) error
	stringParam func(d *driver.Driver, key string, v []string) error
)

func shader(add addShader, fp floatParam, sp stringParam) directive {
	return func(p *parser, t *token.Token) error {
		itemType, err := p.str()
		if err != nil {
			return err
		}
		name, err := p.handle()
		if err != nil {
			return err
		}
		p.opts.trackPos(add(p.drv, itemType, name), t.Pos)
		return p.blockParams(fp, sp)
	}
}

// handle reads a shader handle: a string, or a number as written by
// LightSource in older files.
func (p *parser) handle() (string, error) {
	t := p.peek()
	if t != nil && t.Type.IsNumber() {
		p.i++
		return string(t.Bytes), nil
	}
	return p.str()
}

func (p *parser) blockParams(fp floatParam, sp stringParam) error {
	params, err := p.params()
	if err != nil {
		return err
	}
	for i := range params {
		pr := &params[i]
		if pr.isStr {
			err = sp(p.drv, pr.key, pr.strings)
		} else {
			err = fp(p.drv, pr.key, pr.floats)
		}
		if err == nil {
			continue
		}
		if rerr := p.reject(err, pr.pos); rerr != nil {
			return rerr
		}
	}
	return nil
}
