package driver

import (
	"fmt"

	"github.com/rib-format/go-rib/debug"
	"github.com/rib-format/go-rib/scene"
)

// target returns the last child of the current node if want accepts its
// type.
func (d *Driver) target(what string, want func(scene.Type) bool) (*scene.Node, error) {
	last := d.cursor.Current().Last()
	if last == nil {
		return nil, fmt.Errorf("%w: %s parameter under empty %s", ErrNoTarget, what, d.cursor.Current().Type())
	}
	if !want(last.Type()) {
		return nil, fmt.Errorf("%w: %s parameter after %s", ErrTypeMismatch, what, last.Type())
	}
	return last, nil
}

func is(t scene.Type) func(scene.Type) bool {
	return func(u scene.Type) bool { return u == t }
}

func (d *Driver) blockFloat(what string, want func(scene.Type) bool, key string, v []float64) error {
	n, err := d.target(what, want)
	if err == nil {
		err = n.Payload().(scene.Block).ParamSet().AddFloat(key, v)
	}
	d.trace(key, err)
	return err
}

func (d *Driver) blockString(what string, want func(scene.Type) bool, key string, v []string) error {
	n, err := d.target(what, want)
	if err == nil {
		err = n.Payload().(scene.Block).ParamSet().AddString(key, v)
	}
	d.trace(key, err)
	return err
}

func (d *Driver) meshFloat(what string, t scene.Type, key string, v []float64) error {
	n, err := d.target(what, is(t))
	if err == nil {
		err = n.Payload().(scene.Mesh).FloatParams().Add(key, v)
	}
	d.trace(key, err)
	return err
}

func (d *Driver) trace(key string, err error) {
	if err != nil && debug.Driver() {
		debug.Logf("driver: parameter %q discarded: %v\n", key, err)
	}
}

func (d *Driver) AddPGPParam(key string, v []float64) error {
	return d.meshFloat("PointsGeneralPolygons", scene.PointsGeneralPolygonsType, key, v)
}

func (d *Driver) AddPPParam(key string, v []float64) error {
	return d.meshFloat("PointsPolygons", scene.PointsPolygonsType, key, v)
}

// AddAttrFloatParam decorates the last node if it is any attribute block:
// Attribute, Pattern, Bxdf or Light.
func (d *Driver) AddAttrFloatParam(key string, v []float64) error {
	return d.blockFloat("Attribute", scene.Type.IsAttribute, key, v)
}

func (d *Driver) AddAttrStringParam(key string, v []string) error {
	return d.blockString("Attribute", scene.Type.IsAttribute, key, v)
}

func (d *Driver) AddPatternFloatParam(key string, v []float64) error {
	return d.blockFloat("Pattern", is(scene.PatternType), key, v)
}

func (d *Driver) AddPatternStringParam(key string, v []string) error {
	return d.blockString("Pattern", is(scene.PatternType), key, v)
}

func (d *Driver) AddBxdfFloatParam(key string, v []float64) error {
	return d.blockFloat("Bxdf", is(scene.BxdfType), key, v)
}

func (d *Driver) AddBxdfStringParam(key string, v []string) error {
	return d.blockString("Bxdf", is(scene.BxdfType), key, v)
}

func (d *Driver) AddLightFloatParam(key string, v []float64) error {
	return d.blockFloat("Light", is(scene.LightType), key, v)
}

func (d *Driver) AddLightStringParam(key string, v []string) error {
	return d.blockString("Light", is(scene.LightType), key, v)
}
