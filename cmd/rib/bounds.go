package main

import (
	"fmt"

	"github.com/rib-format/go-rib/preview"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func bounds(cfg *BoundsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bounds.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.NU < 1 || cfg.NV < 1 {
		return fmt.Errorf("%w: -nu and -nv must be positive", cli.ErrUsage)
	}
	var sOpts []preview.SamplerOption
	if cfg.Seed != 0 {
		sOpts = append(sOpts, preview.Jitter(uint64(cfg.Seed)))
	}
	return eachScene(cc, args, cfg.parseOpts(), func(_ int, root *scene.Node) error {
		s := preview.NewSampler(cfg.NU, cfg.NV, sOpts...)
		b := preview.BoundsOf(root, s)
		if b.Empty() {
			_, err := fmt.Fprintln(cc.Out, "empty")
			return err
		}
		_, err := fmt.Fprintf(cc.Out, "min %s\nmax %s\ncenter %s\npoints %d\n",
			fmtV3(b.Min), fmtV3(b.Max), fmtV3(b.Center()), b.Count())
		return err
	})
}

func fmtV3(v preview.V3) string {
	return fmt.Sprintf("%g %g %g", v[0], v[1], v[2])
}
