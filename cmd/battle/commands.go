package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "battle").
		WithSynopsis("battle [opts] command [opts]").
		WithDescription("battle generates, mirrors and inspects battlefield documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return battleMain(cfg, cc, args)
		}).
		WithSubs(
			GenCommand(cfg),
			MirrorCommand(cfg),
			UnitsCommand(cfg),
			PoolsCommand(cfg))
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Gen, "gen").
		WithAliases("g").
		WithSynopsis("gen [-config file.yaml] [-seed n]").
		WithDescription("generate a random battlefield document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}

func MirrorCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MirrorConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Mirror, "mirror").
		WithAliases("m").
		WithSynopsis("mirror [-diff [-r]] [-patch patch.json] file").
		WithDescription("read a battlefield document and write it back out").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mirror(cfg, cc, args)
		})
}

func UnitsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnitsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Units, "units").
		WithAliases("u").
		WithSynopsis("units [-where expr] file").
		WithDescription("list the units of a battlefield document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return units(cfg, cc, args)
		})
}

func PoolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PoolsConfig{MainConfig: mainCfg, Rounds: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Pools, "pools").
		WithAliases("p").
		WithSynopsis("pools [-n rounds]").
		WithDescription("run generate/mirror rounds and show pool statistics").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pools(cfg, cc, args)
		})
}
