package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/format"
	"github.com/rib-format/go-rib/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Strict bool   `cli:"name=strict desc='fail on unknown directives and rejected parameters'"`
	Config string `cli:"name=config desc='yaml file with default settings'"`
	Indent int    `cli:"name=indent desc='spaces per level in text output'"`

	OutFormat *format.Format
	File      *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// isSet reports whether the option name of cmd was given on the command
// line.
func isSet(cmd *cli.Command, name string) (any, bool) {
	if cmd == nil {
		return nil, false
	}
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		if opt.Value == nil {
			return nil, false
		}
		return *opt.Value, true
	}
	return nil, false
}

func (cfg *MainConfig) strict() bool {
	if _, ok := isSet(cfg.Main, "strict"); ok {
		return cfg.Strict
	}
	if cfg.File != nil && cfg.File.Strict != nil {
		return *cfg.File.Strict
	}
	return cfg.Strict
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseStrict(cfg.strict()),
		parse.ParseWarnings(func(err error) {
			theLog.Warn("skipped", "error", err)
		}),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.File != nil && cfg.File.format != nil {
		return *cfg.File.format
	}
	return format.TextFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if _, ok := isSet(cfg.Main, "color"); ok {
		return false
	}
	if cfg.File != nil && cfg.File.Color != nil {
		return *cfg.File.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='stop output below this depth'"`

	View *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`

	Tokens *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Encode bool `cli:"name=e desc='encode matching subtrees instead of listing paths'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=patch desc='output a json merge patch'"`
	Context int  `cli:"name=U desc='lines of context, negative for all'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Ops  bool `cli:"name=ops desc='patch is a json patch operation list'"`
	File bool `cli:"name=f desc='consider patch a file path'"`

	Patch *cli.Command
}

type BoundsConfig struct {
	*MainConfig
	NU   int    `cli:"name=nu desc='samples around each quadric'"`
	NV   int    `cli:"name=nv desc='samples along each quadric'"`
	Seed int    `cli:"name=seed desc='jitter samples with this seed, 0 for none'"`

	Bounds *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Debounce time.Duration
	Show     bool `cli:"name=show desc='encode the tree after each rebuild'"`
	Gops     bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Watch *cli.Command
}

func (cfg *WatchConfig) debounceOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.ParseDuration(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Debounce = d
	return d, nil
}

func (cfg *WatchConfig) debounce() time.Duration {
	if _, ok := isSet(cfg.Watch, "debounce"); ok {
		return cfg.Debounce
	}
	if cfg.File != nil && cfg.File.debounce > 0 {
		return cfg.File.debounce
	}
	return cfg.Debounce
}
