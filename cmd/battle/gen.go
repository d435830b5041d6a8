package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/signadot/streamdispatch/battle"
	"github.com/signadot/streamdispatch/stream"

	"github.com/scott-cotton/cli"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		cfg.Gen.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: gen takes no arguments, got %v", cli.ErrUsage, args)
	}
	gc, err := cfg.generateConfig()
	if err != nil {
		return err
	}
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return generate(cc.Out, battle.DefaultPools(), gc, seed, cfg.encOpts()...)
}

func (cfg *GenConfig) generateConfig() (battle.GenerateConfig, error) {
	if cfg.Config == "" {
		return battle.DefaultGenerateConfig(), nil
	}
	f, err := os.Open(cfg.Config)
	if err != nil {
		return battle.GenerateConfig{}, err
	}
	defer f.Close()
	gc, err := battle.LoadGenerateConfig(f)
	if err != nil {
		return gc, fmt.Errorf("error loading %s: %w", cfg.Config, err)
	}
	return gc, nil
}

func generate(w io.Writer, p *battle.Pools, gc battle.GenerateConfig, seed uint64, opts ...stream.EncoderOption) error {
	f := battle.Generate(p, rand.New(rand.NewPCG(seed, seed)), gc)
	defer f.Release()
	return battle.Write(w, f, opts...)
}
