package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/rib-format/go-rib/driver"
	"github.com/rib-format/go-rib/format"
	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"
)

const src = `WorldBegin
  Light "PxrRectLight" "key" "color lightColor" [1 0.5 0] "string notes" "warm \"key\""
  AttributeBegin
    Attribute "identifier" "string name" ["ball"]
    Translate 0 0 5
    ConcatTransform [1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1]
    Sphere 1 -1 1 360
    Torus 1 0.25 0 360 360
    Hyperboloid 0 1 -1 1 0 1 360
  AttributeEnd
  TransformBegin
    Scale 2 2 2
    PointsGeneralPolygons [1] [3] [0 1 2] "P" [0 0 0 1 0 0 0 1 0]
    Bxdf "PxrSurface" "s" "float diffuseGain" 1e6
  TransformEnd
WorldEnd
`

func mustParse(t *testing.T, d string) *scene.Node {
	t.Helper()
	root, err := parse.Parse([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestText(t *testing.T) {
	d := driver.New()
	d.AddNode()
	d.AddTranslate(1, 2, 3)
	d.AddSphere(5, -5, 5, 360)
	d.AddPP([]int{3}, []int{0, 1, 2})
	d.AddPPParam("P", []float64{0, 0, 0, 1, 0, 0, 0, 1, 0})
	d.AddAttribute("user")
	d.AddAttrStringParam("tag", []string{"a"})
	d.AddAttrFloatParam("w", []float64{0.5})
	d.SelectParent()

	want := `Group
  Group
    Translate x=1 y=2 z=3
    Sphere radius=5 zmin=-5 zmax=5 thetamax=360
    PointsPolygons nvertices=[3] vertices=[0 1 2]
      P [0 0 0 1 0 0 0 1 0]
    Attribute name="user"
      w [0.5]
      tag ["a"]`
	if got := MustString(d.Root()); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	got := MustString(d.Root(), MaxDepth(2), Indent(4))
	if got != "Group\n    Group" {
		t.Errorf("depth limited: got %q", got)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: scene.SphereType, Attr: TypeColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	root := scene.NewGroup()
	root.Append(scene.New(&scene.Sphere{Radius: 1, ZMin: -1, ZMax: 1, ThetaMax: 360}))
	got := MustString(root, EncodeColors(c))
	want := "Group\n  <Sphere> radius=1 zmin=-1 zmax=1 thetamax=360"
	if got != want {
		t.Errorf("got %q", got)
	}
	if NewColors().Get(scene.SphereType, TypeColor) == nil {
		t.Error("no sphere color")
	}
}

func TestRIBRoundTrip(t *testing.T) {
	root := mustParse(t, src)
	out := MustString(root, EncodeFormat(format.RIBFormat))
	again := mustParse(t, out)
	if root.Hash() != again.Hash() {
		t.Errorf("round trip changed the tree:\n%s\n---\n%s", MustString(root), MustString(again))
	}
	if !strings.Contains(out, `"string notes" ["warm \"key\""]`) {
		t.Errorf("string param not quoted:\n%s", out)
	}
	if strings.Contains(out, "WorldBegin") {
		t.Error("groups not written as attribute blocks")
	}
}

func TestRIBEmptyParams(t *testing.T) {
	d := driver.New()
	d.AddNode()
	d.AddAttribute("user")
	if err := d.AddAttrFloatParam("weights", []float64{}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddAttrStringParam("tags", []string{}); err != nil {
		t.Fatal(err)
	}
	d.AddPP([]int{3}, []int{0, 1, 2})
	if err := d.AddPPParam("P", []float64{}); err != nil {
		t.Fatal(err)
	}
	out := MustString(d.Root(), EncodeFormat(format.RIBFormat))
	for _, want := range []string{`"float weights" []`, `"string tags" []`, `"P" []`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
	again := mustParse(t, out)
	if diff := cmp.Diff(d.Root().Children[0].Children[0].Payload(), again.Children[0].Children[0].Payload()); diff != "" {
		t.Errorf("attribute (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.Root().Children[0].Children[1].Payload(), again.Children[0].Children[1].Payload()); diff != "" {
		t.Errorf("mesh (-want +got):\n%s", diff)
	}
}

func TestRIBOutput(t *testing.T) {
	root := mustParse(t, "AttributeBegin\nRotate 45 0 1 0\nPointsPolygons [3] [0 1 2] \"P\" [0 0 0 1 0 0 0 1 0]\nAttributeEnd")
	want := `AttributeBegin
  Rotate 45 0 1 0
  PointsPolygons [3] [0 1 2] "P" [0 0 0 1 0 0 0 1 0]
AttributeEnd`
	if got := MustString(root, EncodeFormat(format.RIBFormat)); got != want {
		t.Errorf("got\n%s", got)
	}
}

func TestJSON(t *testing.T) {
	root := mustParse(t, src)
	buf := &bytes.Buffer{}
	if err := Encode(root, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	back := &scene.Node{}
	if err := json.Unmarshal(buf.Bytes(), back); err != nil {
		t.Fatal(err)
	}
	if back.Hash() != root.Hash() {
		t.Error("json round trip changed the tree")
	}
}

func TestYAML(t *testing.T) {
	root := scene.NewGroup()
	root.Append(scene.New(&scene.Disk{Height: 0, Radius: 2, ThetaMax: 180}))
	buf := &bytes.Buffer{}
	if err := Encode(root, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["type"] != "Group" {
		t.Errorf("root type %v", got["type"])
	}
	children, _ := got["children"].([]any)
	if len(children) != 1 {
		t.Fatalf("children %v", got["children"])
	}
	disk, _ := children[0].(map[string]any)
	if disk["type"] != "Disk" {
		t.Errorf("child type %v", disk["type"])
	}
	payload, _ := disk["payload"].(map[string]any)
	vals := map[string]string{}
	for k, v := range payload {
		vals[k] = fmt.Sprint(v)
	}
	if diff := cmp.Diff(map[string]string{"height": "0", "radius": "2", "thetamax": "180"}, vals); diff != "" {
		t.Errorf("payload (-want +got):\n%s", diff)
	}
}

func TestBadFormat(t *testing.T) {
	if err := Encode(scene.NewGroup(), &bytes.Buffer{}, EncodeFormat(format.Format(42))); err == nil {
		t.Error("expected error")
	}
}
