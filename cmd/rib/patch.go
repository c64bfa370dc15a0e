package main

import (
	"fmt"

	"github.com/rib-format/go-rib"
	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/libdiff"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = readRIB(cc, args[0])
		if err != nil {
			return err
		}
	}
	apply := libdiff.Apply
	if cfg.Ops {
		apply = libdiff.Patch
	}
	opts := cfg.encOpts(cc.Out)
	return eachScene(cc, args[1:], cfg.parseOpts(), func(_ int, root *scene.Node) error {
		res, err := apply(root, p)
		if err != nil {
			return err
		}
		defer rib.Free(res)
		return encode.Encode(res, cc.Out, opts...)
	})
}
