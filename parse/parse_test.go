package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rib-format/go-rib/driver"
	"github.com/rib-format/go-rib/scene"
	"github.com/rib-format/go-rib/token"
)

// shape renders the types of a tree as nested lists, e.g.
// "Group(Translate Sphere)".
func shape(n *scene.Node) string {
	var b strings.Builder
	var rec func(n *scene.Node)
	rec = func(n *scene.Node) {
		b.WriteString(n.Type().String())
		if len(n.Children) == 0 {
			return
		}
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			rec(c)
		}
		b.WriteByte(')')
	}
	rec(n)
	return b.String()
}

const scene1 = `##RenderMan RIB
version 3.04
Display "out.exr" "openexr" "rgba"
FrameBegin 1
WorldBegin
  Light "PxrDomeLight" "dome" "float intensity" [0.5] "string lightColorMap" "sky.tex"
  AttributeBegin
    Attribute "identifier" "string name" ["ball"]
    Translate 0 0 5
    Rotate 90 1 0 0
    Pattern "PxrTexture" "tex" "string filename" ["ball.tex"]
    Bxdf "PxrSurface" "surf" "color diffuseColor" [1 0 0] "float diffuseGain" 0.8
    Sphere 1 -1 1 360
  AttributeEnd
  TransformBegin
    Scale [2 2 2]
    PointsPolygons [4] [0 1 2 3] "P" [0 0 0 1 0 0 1 1 0 0 1 0]
  TransformEnd
WorldEnd
FrameEnd
`

func TestParseScene(t *testing.T) {
	var warnings []error
	root, err := Parse([]byte(scene1), ParseWarnings(func(e error) { warnings = append(warnings, e) }))
	if err != nil {
		t.Fatal(err)
	}
	want := "Group(Group(Group(Light Group(Attribute Translate Rotate Pattern Bxdf Sphere) Group(Scale PointsPolygons))))"
	if got := shape(root); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 skipped directives, got %v", warnings)
	}
	for _, w := range warnings {
		if !errors.Is(w, ErrUnknownDirective) {
			t.Errorf("unexpected warning %v", w)
		}
	}

	world := root.Children[0].Children[0]
	light := world.Children[0].Payload().(*scene.Light)
	wantLight := &scene.Light{Shader: scene.Shader{
		ItemType: "PxrDomeLight",
		Name:     "dome",
		Params: scene.ParamSet{
			Floats:  scene.FloatParams{"intensity": {0.5}},
			Strings: scene.StringParams{"lightColorMap": {"sky.tex"}},
		},
	}}
	if diff := cmp.Diff(wantLight, light); diff != "" {
		t.Errorf("light (-want +got):\n%s", diff)
	}

	attrs := world.Children[1]
	a := attrs.Children[0].Payload().(*scene.Attribute)
	if diff := cmp.Diff([]string{"ball"}, a.Params.Strings["name"]); diff != "" {
		t.Error(diff)
	}
	r := attrs.Children[2].Payload().(*scene.Rotate)
	if diff := cmp.Diff(&scene.Rotate{Angle: 90, X: 1}, r); diff != "" {
		t.Error(diff)
	}
	b := attrs.Children[4].Payload().(*scene.Bxdf)
	if diff := cmp.Diff(scene.FloatParams{"diffuseColor": {1, 0, 0}, "diffuseGain": {0.8}}, b.Params.Floats); diff != "" {
		t.Error(diff)
	}
	mesh := world.Children[2].Children[1].Payload().(*scene.PointsPolygons)
	if n := len(mesh.Params["P"]); n != 12 {
		t.Errorf("len(P) = %d", n)
	}
}

func TestParamKey(t *testing.T) {
	tests := map[string]string{
		"P":                     "P",
		"color lightColor":      "lightColor",
		"uniform float  Kd":     "Kd",
		"constant string[2] ab": "ab",
		"   ":                   "",
	}
	for in, want := range tests {
		if got := ParamKey(in); got != want {
			t.Errorf("ParamKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTransformAtRoot(t *testing.T) {
	root, err := Parse([]byte("Translate 1 2 3\nConcatTransform [1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1]\nSphere 1 -1 1 360"))
	if err != nil {
		t.Fatal(err)
	}
	if got := shape(root); got != "Group(Sphere)" {
		t.Errorf("got %s", got)
	}
	root, err = Parse([]byte("Translate 1 2 3"), ParseDriverOptions(driver.KeepRootTransforms()))
	if err != nil {
		t.Fatal(err)
	}
	if got := shape(root); got != "Group(Translate)" {
		t.Errorf("got %s", got)
	}
}

func TestUnbalancedEnds(t *testing.T) {
	root, err := Parse([]byte("AttributeEnd\nAttributeBegin\nAttributeEnd\nWorldEnd\nDisk 0 1 360"))
	if err != nil {
		t.Fatal(err)
	}
	if got := shape(root); got != "Group(Group Disk)" {
		t.Errorf("got %s", got)
	}
}

func TestPGP(t *testing.T) {
	src := `AttributeBegin
PointsGeneralPolygons [1] [4] [0 1 2 3] "P" [0 0 0 1 0 0 1 1 0 0 1 0] "float s" [0 1 1 0]
AttributeEnd`
	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	m := root.Children[0].Children[0].Payload().(*scene.PointsGeneralPolygons)
	want := &scene.PointsGeneralPolygons{
		NLoops:    []int{1},
		NVertices: []int{4},
		Vertices:  []int{0, 1, 2, 3},
		Params: scene.FloatParams{
			"P": {0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
			"s": {0, 1, 1, 0},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("mesh (-want +got):\n%s", diff)
	}
}

func TestLightSourceHandle(t *testing.T) {
	root, err := Parse([]byte(`LightSource "spotlight" 1 "float intensity" 2`))
	if err != nil {
		t.Fatal(err)
	}
	l := root.Children[0].Payload().(*scene.Light)
	if l.ItemType != "spotlight" || l.Name != "1" {
		t.Errorf("got %+v", l.Shader)
	}
	if diff := cmp.Diff([]float64{2}, l.Params.Floats["intensity"]); diff != "" {
		t.Error(diff)
	}
}

func TestRejectedParams(t *testing.T) {
	src := `Sphere 1 -1 1 360 "constant float id" 3
Bxdf "PxrDiffuse" "d" "float k" 1 "float k" 2`
	var warnings []error
	root, err := Parse([]byte(src), ParseWarnings(func(e error) { warnings = append(warnings, e) }))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings %v", warnings)
	}
	if !errors.Is(warnings[0], driver.ErrTypeMismatch) {
		t.Errorf("got %v", warnings[0])
	}
	if !errors.Is(warnings[1], scene.ErrDuplicateParam) {
		t.Errorf("got %v", warnings[1])
	}
	b := root.Children[1].Payload().(*scene.Bxdf)
	if diff := cmp.Diff([]float64{1}, b.Params.Floats["k"]); diff != "" {
		t.Error(diff)
	}

	_, err = Parse([]byte(src), ParseStrict(true))
	if !errors.Is(err, ErrParam) || !errors.Is(err, driver.ErrTypeMismatch) {
		t.Errorf("strict: got %v", err)
	}
}

func TestStrictUnknown(t *testing.T) {
	root, err := Parse([]byte("WorldBegin\nOption \"limits\" \"int threads\" [4]\nWorldEnd"), ParseStrict(true))
	if !errors.Is(err, ErrUnknownDirective) {
		t.Fatalf("got %v", err)
	}
	var pe *ParseErr
	if !errors.As(err, &pe) || pe.Pos.Line() != 1 {
		t.Errorf("bad position in %v", err)
	}
	if got := shape(root); got != "Group(Group)" {
		t.Errorf("partial tree %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"Sphere 1 2", ErrArgs},
		{"Sphere [1 2 3]", ErrArgs},
		{"Sphere [1 2 3 4 5]", ErrArgs},
		{"Translate 1 2 \"x\"", ErrArgs},
		{"PointsPolygons [1.5] [0]", ErrArgs},
		{"Attribute 3", ErrArgs},
		{"1 2 3", ErrParse},
		{`Attribute "a" "float k" [1 "x"]`, ErrParam},
		{`Attribute "a" "" 1`, ErrParam},
		{`Attribute "a" "float k"`, ErrArgs},
		{`Attribute "a" "float k" [1`, ErrArgs},
		{`Attribute "a`, token.ErrUnterminated},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestTokenizeErrorKeepsPrefix(t *testing.T) {
	root, err := Parse([]byte("AttributeBegin\nSphere 1 -1 1 360\nAttribute \"x"))
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("got %v", err)
	}
	if got := shape(root); got != "Group(Group(Sphere))" {
		t.Errorf("got %s", got)
	}
}

func TestPositions(t *testing.T) {
	src := "WorldBegin\n  Sphere 1 -1 1 360\nWorldEnd\n"
	pos := map[*scene.Node]*token.Pos{}
	ends := map[*scene.Node]*token.Pos{}
	root, err := Parse([]byte(src), ParsePositions(pos), ParseBlockEnds(ends))
	if err != nil {
		t.Fatal(err)
	}
	world := root.Children[0]
	sphere := world.Children[0]
	if p := pos[world]; p == nil || p.Line() != 0 {
		t.Errorf("world at %v", p)
	}
	if p := pos[sphere]; p == nil || p.Line() != 1 || p.Col() != 2 {
		t.Errorf("sphere at %v", p)
	}
	if p := ends[world]; p == nil || p.Line() != 2 {
		t.Errorf("world end at %v", p)
	}
	if _, ok := pos[root]; ok {
		t.Error("root has a position")
	}
}

func TestDriveIntoRoot(t *testing.T) {
	host := scene.NewGroup()
	anchor := host.Append(scene.NewGroup())
	d := driver.New(driver.WithRoot(anchor))
	if err := Drive([]byte("Cone 1 1 360"), d); err != nil {
		t.Fatal(err)
	}
	if got := shape(host); got != "Group(Group(Cone))" {
		t.Errorf("got %s", got)
	}
}

func TestDirectives(t *testing.T) {
	ds := Directives()
	for _, name := range []string{"AttributeBegin", "LightSource", "PointsGeneralPolygons", "Torus"} {
		if !IsDirective(name) {
			t.Errorf("%s not recognized", name)
		}
	}
	if IsDirective("Display") {
		t.Error("Display recognized")
	}
	if len(ds) != 26 {
		t.Errorf("%d directives", len(ds))
	}
}
