package scene

import "fmt"

type Type int

const (
	GroupType Type = iota
	AttributeType
	TranslateType
	RotateType
	ScaleType
	ConcatTransformType
	HyperboloidType
	ParaboloidType
	TorusType
	CylinderType
	SphereType
	DiskType
	ConeType
	PointsGeneralPolygonsType
	PointsPolygonsType
	PatternType
	BxdfType
	LightType
)

var typeNames = map[Type]string{
	GroupType:                 "Group",
	AttributeType:             "Attribute",
	TranslateType:             "Translate",
	RotateType:                "Rotate",
	ScaleType:                 "Scale",
	ConcatTransformType:       "ConcatTransform",
	HyperboloidType:           "Hyperboloid",
	ParaboloidType:            "Paraboloid",
	TorusType:                 "Torus",
	CylinderType:              "Cylinder",
	SphereType:                "Sphere",
	DiskType:                  "Disk",
	ConeType:                  "Cone",
	PointsGeneralPolygonsType: "PointsGeneralPolygons",
	PointsPolygonsType:        "PointsPolygons",
	PatternType:               "Pattern",
	BxdfType:                  "Bxdf",
	LightType:                 "Light",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for k, v := range typeNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, d)
}

func Types() []Type {
	return []Type{
		GroupType,
		AttributeType,
		TranslateType,
		RotateType,
		ScaleType,
		ConcatTransformType,
		HyperboloidType,
		ParaboloidType,
		TorusType,
		CylinderType,
		SphereType,
		DiskType,
		ConeType,
		PointsGeneralPolygonsType,
		PointsPolygonsType,
		PatternType,
		BxdfType,
		LightType,
	}
}

func (t Type) IsTransform() bool {
	switch t {
	case TranslateType, RotateType, ScaleType, ConcatTransformType:
		return true
	default:
		return false
	}
}

func (t Type) IsQuadric() bool {
	switch t {
	case HyperboloidType, ParaboloidType, TorusType, CylinderType,
		SphereType, DiskType, ConeType:
		return true
	default:
		return false
	}
}

func (t Type) IsMesh() bool {
	return t == PointsGeneralPolygonsType || t == PointsPolygonsType
}

// IsAttribute reports whether t belongs to the attribute-block family,
// that is Attribute and its Pattern, Bxdf and Light specializations.
func (t Type) IsAttribute() bool {
	switch t {
	case AttributeType, PatternType, BxdfType, LightType:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether nodes of type t are leaves in the RIB sense, i.e.
// everything except groups.  Leaves still own children if a command stream
// puts them there.
func (t Type) IsLeaf() bool {
	return t != GroupType
}
