package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/streamdispatch/battle"
	"github.com/signadot/streamdispatch/libdiff"
	"github.com/signadot/streamdispatch/stream"

	"github.com/scott-cotton/cli"
)

func mirror(cfg *MirrorConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mirror.Parse(cc, args)
	if err != nil {
		cfg.Mirror.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: mirror requires 1 argument, got %v", cli.ErrUsage, args)
	}
	doc, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	var patch []byte
	if cfg.Patch != "" {
		patch, err = os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
	}
	opts := mirrorOpts{
		patch:   patch,
		diff:    cfg.Diff,
		reverse: cfg.Reverse,
		colors:  cfg.colors(cc.Out),
		enc:     cfg.encOpts(),
	}
	differs, err := mirrorDoc(cc.Out, battle.DefaultPools(), doc, opts)
	if err != nil {
		return fmt.Errorf("error mirroring %s: %w", args[0], err)
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type mirrorOpts struct {
	patch   []byte
	diff    bool
	reverse bool
	colors  *libdiff.Colors
	enc     []stream.EncoderOption
}

// mirrorDoc reads doc and writes it back to w. With opts.diff, the
// difference between doc and its mirror is written instead, and
// mirrorDoc reports whether there was any.
func mirrorDoc(w io.Writer, p *battle.Pools, doc []byte, opts mirrorOpts) (bool, error) {
	in := doc
	if opts.patch != nil {
		patched, err := battle.ApplyPatch(doc, opts.patch)
		if err != nil {
			return false, err
		}
		in = patched
	}
	f, err := battle.Read(p, bytes.NewReader(in))
	if err != nil {
		return false, err
	}
	defer f.Release()
	if !opts.diff {
		return false, battle.Write(w, f, opts.enc...)
	}
	out := &bytes.Buffer{}
	if err := battle.Write(out, f, opts.enc...); err != nil {
		return false, err
	}
	d := libdiff.Text(string(doc), out.String())
	if d == nil {
		return false, nil
	}
	if opts.reverse {
		d = libdiff.Reverse(d)
	}
	return true, libdiff.Render(w, d, opts.colors)
}
