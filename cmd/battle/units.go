package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/streamdispatch/battle"

	"github.com/scott-cotton/cli"
)

func units(cfg *UnitsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Units.Parse(cc, args)
	if err != nil {
		cfg.Units.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: units requires 1 argument, got %v", cli.ErrUsage, args)
	}
	var uf *battle.UnitFilter
	if cfg.Where != "" {
		uf, err = battle.NewUnitFilter(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	doc, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	return listUnits(cc.Out, battle.DefaultPools(), doc, uf)
}

func listUnits(w io.Writer, p *battle.Pools, doc []byte, uf *battle.UnitFilter) error {
	f, err := battle.Read(p, bytes.NewReader(doc))
	if err != nil {
		return err
	}
	defer f.Release()
	us := f.Units
	if uf != nil {
		us, err = uf.Filter(us)
		if err != nil {
			return err
		}
	}
	for _, u := range us {
		if _, err := fmt.Fprintf(w, "id=%d atk=%d hp=%d/%d\n", u.ID, u.Atk, u.HP, u.MaxHP); err != nil {
			return err
		}
	}
	return nil
}
