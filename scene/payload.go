package scene

// Payload is the variant data of a node.  The set of payloads is closed:
// only types in this package implement it.
type Payload interface {
	Type() Type
	payload()
}

type Translate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rotate is an axis-angle rotation, Angle in degrees.
type Rotate struct {
	Angle float64 `json:"angle"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

type Scale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ConcatTransform holds a row-major 4x4 matrix.
type ConcatTransform struct {
	Matrix [16]float64 `json:"matrix"`
}

type Sphere struct {
	Radius   float64 `json:"radius"`
	ZMin     float64 `json:"zmin"`
	ZMax     float64 `json:"zmax"`
	ThetaMax float64 `json:"thetamax"`
}

type Cone struct {
	Height   float64 `json:"height"`
	Radius   float64 `json:"radius"`
	ThetaMax float64 `json:"thetamax"`
}

type Cylinder struct {
	Radius   float64 `json:"radius"`
	ZMin     float64 `json:"zmin"`
	ZMax     float64 `json:"zmax"`
	ThetaMax float64 `json:"thetamax"`
}

type Hyperboloid struct {
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	Z1       float64 `json:"z1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Z2       float64 `json:"z2"`
	ThetaMax float64 `json:"thetamax"`
}

type Paraboloid struct {
	RMax     float64 `json:"rmax"`
	ZMin     float64 `json:"zmin"`
	ZMax     float64 `json:"zmax"`
	ThetaMax float64 `json:"thetamax"`
}

type Disk struct {
	Height   float64 `json:"height"`
	Radius   float64 `json:"radius"`
	ThetaMax float64 `json:"thetamax"`
}

type Torus struct {
	RMajor   float64 `json:"rmajor"`
	RMinor   float64 `json:"rminor"`
	PhiMin   float64 `json:"phimin"`
	PhiMax   float64 `json:"phimax"`
	ThetaMax float64 `json:"thetamax"`
}

type PointsGeneralPolygons struct {
	NLoops    []int       `json:"nloops"`
	NVertices []int       `json:"nvertices"`
	Vertices  []int       `json:"vertices"`
	Params    FloatParams `json:"params,omitempty"`
}

type PointsPolygons struct {
	NVertices []int       `json:"nvertices"`
	Vertices  []int       `json:"vertices"`
	Params    FloatParams `json:"params,omitempty"`
}

type Attribute struct {
	Name   string   `json:"name"`
	Params ParamSet `json:"params"`
}

// Shader is the common part of Pattern, Bxdf and Light: an attribute block
// naming the class (ItemType) it instantiates.
type Shader struct {
	ItemType string   `json:"itemType"`
	Name     string   `json:"name"`
	Params   ParamSet `json:"params"`
}

type Pattern struct{ Shader }
type Bxdf struct{ Shader }
type Light struct{ Shader }

func NewAttribute(name string) *Attribute {
	return &Attribute{Name: name, Params: NewParamSet()}
}

func NewPattern(itemType, name string) *Pattern {
	return &Pattern{Shader{ItemType: itemType, Name: name, Params: NewParamSet()}}
}

func NewBxdf(itemType, name string) *Bxdf {
	return &Bxdf{Shader{ItemType: itemType, Name: name, Params: NewParamSet()}}
}

func NewLight(itemType, name string) *Light {
	return &Light{Shader{ItemType: itemType, Name: name, Params: NewParamSet()}}
}

func NewPointsGeneralPolygons(nloops, nvertices, vertices []int) *PointsGeneralPolygons {
	return &PointsGeneralPolygons{
		NLoops:    nloops,
		NVertices: nvertices,
		Vertices:  vertices,
		Params:    FloatParams{},
	}
}

func NewPointsPolygons(nvertices, vertices []int) *PointsPolygons {
	return &PointsPolygons{
		NVertices: nvertices,
		Vertices:  vertices,
		Params:    FloatParams{},
	}
}

func (*Translate) Type() Type             { return TranslateType }
func (*Rotate) Type() Type                { return RotateType }
func (*Scale) Type() Type                 { return ScaleType }
func (*ConcatTransform) Type() Type       { return ConcatTransformType }
func (*Sphere) Type() Type                { return SphereType }
func (*Cone) Type() Type                  { return ConeType }
func (*Cylinder) Type() Type              { return CylinderType }
func (*Hyperboloid) Type() Type           { return HyperboloidType }
func (*Paraboloid) Type() Type            { return ParaboloidType }
func (*Disk) Type() Type                  { return DiskType }
func (*Torus) Type() Type                 { return TorusType }
func (*PointsGeneralPolygons) Type() Type { return PointsGeneralPolygonsType }
func (*PointsPolygons) Type() Type        { return PointsPolygonsType }
func (*Attribute) Type() Type             { return AttributeType }
func (*Pattern) Type() Type               { return PatternType }
func (*Bxdf) Type() Type                  { return BxdfType }
func (*Light) Type() Type                 { return LightType }

func (*Translate) payload()             {}
func (*Rotate) payload()                {}
func (*Scale) payload()                 {}
func (*ConcatTransform) payload()       {}
func (*Sphere) payload()                {}
func (*Cone) payload()                  {}
func (*Cylinder) payload()              {}
func (*Hyperboloid) payload()           {}
func (*Paraboloid) payload()            {}
func (*Disk) payload()                  {}
func (*Torus) payload()                 {}
func (*PointsGeneralPolygons) payload() {}
func (*PointsPolygons) payload()        {}
func (*Attribute) payload()             {}
func (*Pattern) payload()               {}
func (*Bxdf) payload()                  {}
func (*Light) payload()                 {}

// Block is implemented by the attribute-block family.
type Block interface {
	Payload
	// Ident returns the block's name.
	Ident() string
	// Class returns the shader or light class, "" for a plain Attribute.
	Class() string
	ParamSet() *ParamSet
}

func (a *Attribute) Ident() string       { return a.Name }
func (a *Attribute) Class() string       { return "" }
func (a *Attribute) ParamSet() *ParamSet { return &a.Params }

func (s *Shader) Ident() string       { return s.Name }
func (s *Shader) Class() string       { return s.ItemType }
func (s *Shader) ParamSet() *ParamSet { return &s.Params }

// Mesh is implemented by the polygon mesh payloads.
type Mesh interface {
	Payload
	FloatParams() *FloatParams
	// Faces returns the number of vertices of each face, in order.
	Faces() []int
	Indices() []int
}

func (m *PointsGeneralPolygons) FloatParams() *FloatParams { return &m.Params }
func (m *PointsGeneralPolygons) Faces() []int             { return m.NVertices }
func (m *PointsGeneralPolygons) Indices() []int           { return m.Vertices }

func (m *PointsPolygons) FloatParams() *FloatParams { return &m.Params }
func (m *PointsPolygons) Faces() []int             { return m.NVertices }
func (m *PointsPolygons) Indices() []int           { return m.Vertices }

// Points returns the "P" parameter of m, three floats per vertex.
func Points(m Mesh) []float64 {
	return (*m.FloatParams())["P"]
}

func newPayload(t Type) Payload {
	switch t {
	case TranslateType:
		return &Translate{}
	case RotateType:
		return &Rotate{}
	case ScaleType:
		return &Scale{}
	case ConcatTransformType:
		return &ConcatTransform{}
	case SphereType:
		return &Sphere{}
	case ConeType:
		return &Cone{}
	case CylinderType:
		return &Cylinder{}
	case HyperboloidType:
		return &Hyperboloid{}
	case ParaboloidType:
		return &Paraboloid{}
	case DiskType:
		return &Disk{}
	case TorusType:
		return &Torus{}
	case PointsGeneralPolygonsType:
		return NewPointsGeneralPolygons(nil, nil, nil)
	case PointsPolygonsType:
		return NewPointsPolygons(nil, nil)
	case AttributeType:
		return NewAttribute("")
	case PatternType:
		return NewPattern("", "")
	case BxdfType:
		return NewBxdf("", "")
	case LightType:
		return NewLight("", "")
	default:
		return nil
	}
}

func clonePayload(p Payload) Payload {
	switch x := p.(type) {
	case nil:
		return nil
	case *Translate:
		c := *x
		return &c
	case *Rotate:
		c := *x
		return &c
	case *Scale:
		c := *x
		return &c
	case *ConcatTransform:
		c := *x
		return &c
	case *Sphere:
		c := *x
		return &c
	case *Cone:
		c := *x
		return &c
	case *Cylinder:
		c := *x
		return &c
	case *Hyperboloid:
		c := *x
		return &c
	case *Paraboloid:
		c := *x
		return &c
	case *Disk:
		c := *x
		return &c
	case *Torus:
		c := *x
		return &c
	case *PointsGeneralPolygons:
		c := NewPointsGeneralPolygons(cloneInts(x.NLoops), cloneInts(x.NVertices), cloneInts(x.Vertices))
		c.Params = x.Params.Clone()
		return c
	case *PointsPolygons:
		c := NewPointsPolygons(cloneInts(x.NVertices), cloneInts(x.Vertices))
		c.Params = x.Params.Clone()
		return c
	case *Attribute:
		return &Attribute{Name: x.Name, Params: x.Params.Clone()}
	case *Pattern:
		return &Pattern{x.Shader.clone()}
	case *Bxdf:
		return &Bxdf{x.Shader.clone()}
	case *Light:
		return &Light{x.Shader.clone()}
	}
	panic("scene: unhandled payload type")
}

func (s *Shader) clone() Shader {
	return Shader{ItemType: s.ItemType, Name: s.Name, Params: s.Params.Clone()}
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	return append([]int(nil), v...)
}
