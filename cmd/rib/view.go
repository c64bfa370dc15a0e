package main

import (
	"fmt"
	"io"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	opts := append(cfg.encOpts(cc.Out), encode.MaxDepth(cfg.Depth))
	return eachScene(cc, args, cfg.parseOpts(), func(i int, root *scene.Node) error {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n---\n"); err != nil {
				return err
			}
		}
		if err := encode.Encode(root, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		return nil
	})
}
