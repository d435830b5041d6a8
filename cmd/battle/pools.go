package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/signadot/streamdispatch/battle"
	"github.com/signadot/streamdispatch/recycle"

	"github.com/scott-cotton/cli"
)

func pools(cfg *PoolsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pools.Parse(cc, args)
	if err != nil {
		cfg.Pools.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: pools takes no arguments, got %v", cli.ErrUsage, args)
	}
	if cfg.Rounds < 0 {
		return fmt.Errorf("%w: -n must not be negative", cli.ErrUsage)
	}
	return poolRounds(cc.Out, cfg.Rounds, uint64(time.Now().UnixNano()))
}

// poolRounds generates and mirrors cfg.Rounds battlefields on a private
// registry, then lets the registry tick past the quiescence period,
// printing the pool statistics after each phase.
func poolRounds(w io.Writer, rounds int, seed uint64) error {
	reg := recycle.NewRegistry()
	p := battle.NewPools(reg)
	rng := rand.New(rand.NewPCG(seed, seed))
	for range rounds {
		f := battle.Generate(p, rng, battle.DefaultGenerateConfig())
		buf := &bytes.Buffer{}
		err := battle.Write(buf, f)
		f.Release()
		if err != nil {
			return err
		}
		g, err := battle.Read(p, buf)
		if err != nil {
			return err
		}
		g.Release()
	}
	if err := printStats(w, fmt.Sprintf("after %d rounds", rounds), reg); err != nil {
		return err
	}
	for elapsed := time.Duration(0); elapsed <= recycle.Quiescence; elapsed += recycle.UpdateInterval {
		reg.Tick(recycle.UpdateInterval)
	}
	return printStats(w, "after quiescence", reg)
}

func printStats(w io.Writer, title string, reg *recycle.Registry) error {
	if _, err := fmt.Fprintf(w, "# %s\n", title); err != nil {
		return err
	}
	for _, s := range reg.Pools() {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
