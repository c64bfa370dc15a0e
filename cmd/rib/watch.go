package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rib-format/go-rib"
	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/watch"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func watchFile(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: watch requires 1 file, got %v", cli.ErrUsage, args)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := watchLog(os.Stderr)
	h := rib.NewHolder(rib.HolderParseOptions(cfg.parseOpts()...), rib.HolderLogger(log))
	defer h.Close()

	opts := cfg.encOpts(cc.Out)
	var last uint64
	notify := func(st rib.Status, err error) {
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", st, err)
			return
		}
		gen := h.Generation()
		if gen == last {
			return
		}
		last = gen
		root := h.Root()
		fmt.Fprintf(cc.Out, "%s: %d nodes\n", st, root.Count())
		if cfg.Show {
			if err := encode.Encode(root, cc.Out, opts...); err != nil {
				log.Error("encode", "error", err)
			}
			fmt.Fprintln(cc.Out)
		}
	}
	return watch.Run(ctx, h, args[0],
		watch.Debounce(cfg.debounce()),
		watch.Logger(log),
		watch.Notify(notify))
}
