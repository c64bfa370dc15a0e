package main

import (
	"fmt"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/query"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func queryNodes(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachScene(cc, args[1:], cfg.parseOpts(), func(_ int, root *scene.Node) error {
		ns, err := q.Select(root)
		if err != nil {
			return err
		}
		for _, n := range ns {
			if !cfg.Encode {
				fmt.Fprintf(cc.Out, "%s\t%s\n", n.Path(), n.Type())
				continue
			}
			if err := encode.Encode(n, cc.Out, opts...); err != nil {
				return err
			}
		}
		return nil
	})
}
