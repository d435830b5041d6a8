package main

import (
	"io"
	"os"

	"github.com/signadot/streamdispatch/libdiff"
	"github.com/signadot/streamdispatch/stream"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Pretty bool `cli:"name=pretty desc='indent output'"`
	Color  bool `cli:"name=color desc='color diff output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []stream.EncoderOption {
	if cfg.Pretty {
		return []stream.EncoderOption{stream.WithIndent("", "  ")}
	}
	return nil
}

// colors returns the diff colors for w, or nil for plain output. Without
// an explicit -color, colors are used when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		color.NoColor = false
		return libdiff.NewColors()
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

type GenConfig struct {
	*MainConfig
	Config string `cli:"name=config desc='generation config file (yaml)'"`
	Seed   int    `cli:"name=seed desc='random seed, 0 for a time based seed'"`

	Gen *cli.Command
}

type MirrorConfig struct {
	*MainConfig
	Diff    bool   `cli:"name=diff desc='show the difference between input and output'"`
	Reverse bool   `cli:"name=r desc='reverse the diff'"`
	Patch   string `cli:"name=patch desc='json patch file applied to the input first'"`

	Mirror *cli.Command
}

type UnitsConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='unit filter expression over id, atk, hp, maxHp'"`

	Units *cli.Command
}

type PoolsConfig struct {
	*MainConfig
	Rounds int `cli:"name=n desc='number of generate/mirror rounds'"`

	Pools *cli.Command
}
