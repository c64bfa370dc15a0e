package preview

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/rib-format/go-rib/scene"
)

// Sampler chooses the (u, v) parameters at which quadrics are evaluated.
type Sampler struct {
	NU, NV int
	rng    *rand.Rand
}

type SamplerOption func(*Sampler)

// Jitter displaces each sample randomly inside its grid cell, with a
// generator seeded by seed.
func Jitter(seed uint64) SamplerOption {
	return func(s *Sampler) { s.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// NewSampler samples nu by nv parameters.  Without jitter the grid spans
// [0, 1] in both directions, end points included.
func NewSampler(nu, nv int, opts ...SamplerOption) *Sampler {
	s := &Sampler{NU: max(nu, 1), NV: max(nv, 1)}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Sampler) param(i, n int) float32 {
	if s.rng != nil {
		return (float32(i) + s.rng.Float32()) / float32(n)
	}
	if n == 1 {
		return 0.5
	}
	return float32(i) / float32(n-1)
}

func (s *Sampler) grid(f func(u, v float32) V3) []V3 {
	res := make([]V3, 0, s.NU*s.NV)
	for i := range s.NU {
		u := s.param(i, s.NU)
		for j := range s.NV {
			res = append(res, f(u, s.param(j, s.NV)))
		}
	}
	return res
}

// Points returns object space samples of the shape p: a grid on quadrics,
// the "P" vertices of meshes and nothing for any other payload.
func (s *Sampler) Points(p scene.Payload) []V3 {
	switch p := p.(type) {
	case *scene.Sphere:
		return s.grid(sphere(f32(p.Radius), f32(p.ZMin), f32(p.ZMax), f32(p.ThetaMax)))
	case *scene.Cone:
		return s.grid(cone(f32(p.Height), f32(p.Radius), f32(p.ThetaMax)))
	case *scene.Cylinder:
		return s.grid(cylinder(f32(p.Radius), f32(p.ZMin), f32(p.ZMax), f32(p.ThetaMax)))
	case *scene.Hyperboloid:
		return s.grid(hyperboloid(
			V3{f32(p.X1), f32(p.Y1), f32(p.Z1)},
			V3{f32(p.X2), f32(p.Y2), f32(p.Z2)},
			f32(p.ThetaMax)))
	case *scene.Paraboloid:
		return s.grid(paraboloid(f32(p.RMax), f32(p.ZMin), f32(p.ZMax), f32(p.ThetaMax)))
	case *scene.Disk:
		return s.grid(disk(f32(p.Height), f32(p.Radius), f32(p.ThetaMax)))
	case *scene.Torus:
		return s.grid(torus(f32(p.RMajor), f32(p.RMinor), f32(p.PhiMin), f32(p.PhiMax), f32(p.ThetaMax)))
	case scene.Mesh:
		flat := scene.Points(p)
		res := make([]V3, 0, len(flat)/3)
		for i := 0; i+2 < len(flat); i += 3 {
			res = append(res, V3{f32(flat[i]), f32(flat[i+1]), f32(flat[i+2])})
		}
		return res
	}
	return nil
}

func f32(f float64) float32 { return float32(f) }

func sphere(radius, zmin, zmax, thetamax float32) func(u, v float32) V3 {
	phimin := -math32.Pi / 2
	if zmin > -radius {
		phimin = math32.Asin(zmin / radius)
	}
	phimax := math32.Pi / 2
	if zmax < radius {
		phimax = math32.Asin(zmax / radius)
	}
	thetamax = radians(thetamax)
	return func(u, v float32) V3 {
		phi := phimin + v*(phimax-phimin)
		theta := u * thetamax
		return V3{
			radius * math32.Cos(theta) * math32.Cos(phi),
			radius * math32.Sin(theta) * math32.Cos(phi),
			radius * math32.Sin(phi),
		}
	}
}

func cone(height, radius, thetamax float32) func(u, v float32) V3 {
	thetamax = radians(thetamax)
	return func(u, v float32) V3 {
		theta := u * thetamax
		return V3{
			radius * (1 - v) * math32.Cos(theta),
			radius * (1 - v) * math32.Sin(theta),
			v * height,
		}
	}
}

func cylinder(radius, zmin, zmax, thetamax float32) func(u, v float32) V3 {
	thetamax = radians(thetamax)
	return func(u, v float32) V3 {
		theta := u * thetamax
		return V3{
			radius * math32.Cos(theta),
			radius * math32.Sin(theta),
			zmin + v*(zmax-zmin),
		}
	}
}

// hyperboloid sweeps the line from p1 to p2 around z.
func hyperboloid(p1, p2 V3, thetamax float32) func(u, v float32) V3 {
	thetamax = radians(thetamax)
	return func(u, v float32) V3 {
		theta := u * thetamax
		xr := (1-v)*p1[0] + v*p2[0]
		yr := (1-v)*p1[1] + v*p2[1]
		zr := (1-v)*p1[2] + v*p2[2]
		s, c := math32.Sin(theta), math32.Cos(theta)
		return V3{xr*c - yr*s, xr*s + yr*c, zr}
	}
}

func paraboloid(rmax, zmin, zmax, thetamax float32) func(u, v float32) V3 {
	thetamax = radians(thetamax)
	return func(u, v float32) V3 {
		theta := u * thetamax
		z := zmin + v*(zmax-zmin)
		var r float32
		if zmax != 0 && z/zmax > 0 {
			r = rmax * math32.Sqrt(z/zmax)
		}
		return V3{r * math32.Cos(theta), r * math32.Sin(theta), z}
	}
}

func disk(height, radius, thetamax float32) func(u, v float32) V3 {
	thetamax = radians(thetamax)
	return func(u, v float32) V3 {
		theta := u * thetamax
		return V3{
			radius * (1 - v) * math32.Cos(theta),
			radius * (1 - v) * math32.Sin(theta),
			height,
		}
	}
}

func torus(rmajor, rminor, phimin, phimax, thetamax float32) func(u, v float32) V3 {
	thetamax = radians(thetamax)
	phimin, phimax = radians(phimin), radians(phimax)
	return func(u, v float32) V3 {
		theta := u * thetamax
		phi := phimin + v*(phimax-phimin)
		r := rminor * math32.Cos(phi)
		return V3{
			(rmajor + r) * math32.Cos(theta),
			(rmajor + r) * math32.Sin(theta),
			rminor * math32.Sin(phi),
		}
	}
}
