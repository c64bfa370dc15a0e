package driver

import (
	"github.com/rib-format/go-rib/debug"
	"github.com/rib-format/go-rib/scene"
)

// transforms outside of any block are constructed but not linked
func (d *Driver) addTransform(p scene.Payload) *scene.Node {
	n := scene.New(p)
	if d.cursor.AtRoot() && !d.opts.keepRootTransforms {
		d.open = nil
		if debug.Driver() {
			debug.Logf("driver: dropped %s at root\n", n.Type())
		}
		return nil
	}
	d.link(n)
	d.open = nil
	return n
}

// AddTranslate returns nil when the transform was dropped at the root.
func (d *Driver) AddTranslate(x, y, z float64) *scene.Node {
	return d.addTransform(&scene.Translate{X: x, Y: y, Z: z})
}

func (d *Driver) AddRotate(angle, x, y, z float64) *scene.Node {
	return d.addTransform(&scene.Rotate{Angle: angle, X: x, Y: y, Z: z})
}

func (d *Driver) AddScale(x, y, z float64) *scene.Node {
	return d.addTransform(&scene.Scale{X: x, Y: y, Z: z})
}

func (d *Driver) AddConcatTransform(m [16]float64) *scene.Node {
	return d.addTransform(&scene.ConcatTransform{Matrix: m})
}

func (d *Driver) AddHyperboloid(x1, y1, z1, x2, y2, z2, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Hyperboloid{
		X1: x1, Y1: y1, Z1: z1,
		X2: x2, Y2: y2, Z2: z2,
		ThetaMax: thetamax,
	}))
}

func (d *Driver) AddParaboloid(rmax, zmin, zmax, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Paraboloid{RMax: rmax, ZMin: zmin, ZMax: zmax, ThetaMax: thetamax}))
}

func (d *Driver) AddTorus(rmajor, rminor, phimin, phimax, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Torus{
		RMajor: rmajor, RMinor: rminor,
		PhiMin: phimin, PhiMax: phimax,
		ThetaMax: thetamax,
	}))
}

func (d *Driver) AddCylinder(radius, zmin, zmax, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Cylinder{Radius: radius, ZMin: zmin, ZMax: zmax, ThetaMax: thetamax}))
}

func (d *Driver) AddSphere(radius, zmin, zmax, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Sphere{Radius: radius, ZMin: zmin, ZMax: zmax, ThetaMax: thetamax}))
}

func (d *Driver) AddDisk(height, radius, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Disk{Height: height, Radius: radius, ThetaMax: thetamax}))
}

func (d *Driver) AddCone(height, radius, thetamax float64) *scene.Node {
	return d.link(scene.New(&scene.Cone{Height: height, Radius: radius, ThetaMax: thetamax}))
}

// AddPGP adds a PointsGeneralPolygons mesh.
func (d *Driver) AddPGP(nloops, nvertices, vertices []int) *scene.Node {
	return d.link(scene.New(scene.NewPointsGeneralPolygons(nloops, nvertices, vertices)))
}

// AddPP adds a PointsPolygons mesh.
func (d *Driver) AddPP(nvertices, vertices []int) *scene.Node {
	return d.link(scene.New(scene.NewPointsPolygons(nvertices, vertices)))
}

func (d *Driver) AddAttribute(name string) *scene.Node {
	return d.link(scene.New(scene.NewAttribute(name)))
}

func (d *Driver) AddPattern(itemType, name string) *scene.Node {
	return d.link(scene.New(scene.NewPattern(itemType, name)))
}

func (d *Driver) AddBxdf(itemType, name string) *scene.Node {
	return d.link(scene.New(scene.NewBxdf(itemType, name)))
}

func (d *Driver) AddLight(itemType, name string) *scene.Node {
	return d.link(scene.New(scene.NewLight(itemType, name)))
}
