package main

import (
	"fmt"
	"io"

	"github.com/rib-format/go-rib"
	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/format"
	"github.com/rib-format/go-rib/libdiff"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, err := getScene(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	defer rib.Free(a)
	b, err := getScene(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	defer rib.Free(b)
	differs, err := diffTrees(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffTrees(cfg *DiffConfig, w io.Writer, a, b *scene.Node) (bool, error) {
	if libdiff.Equal(a, b) {
		return false, nil
	}
	if cfg.Patch {
		p, err := libdiff.MergePatch(a, b)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", p)
		return true, err
	}
	txt := libdiff.Text(a, b,
		libdiff.TextColor(cfg.useColor(w)),
		libdiff.TextContext(cfg.Context),
		libdiff.TextEncode(encode.EncodeFormat(format.TextFormat)))
	_, err := io.WriteString(w, txt)
	return true, err
}
