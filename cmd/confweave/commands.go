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

	return cli.NewCommandAt(&cfg.Main, "confweave").
		WithSynopsis("confweave [opts] command [opts]").
		WithDescription("confweave is a tool for working with sectioned configuration documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cwMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			ResolveCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			ConvertCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("parse documents and re-render them in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("resolve").
		WithAliases("r", "res").
		WithSynopsis("resolve [files]").
		WithDescription("interpolate references across documents; factory-marked mappings stay mappings").
		WithRun(func(cc *cli.Context, args []string) error {
			return resolveRun(cfg, cc, args)
		})
	cfg.Resolve = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "s",
		Aliases:     []string{"set"},
		Description: "override a value, repeatable",
		Type:        cli.NamedFuncOpt(cfg.setOpt, "(path=value)"),
	})
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [-removeExtra] [-s path=value]... <base> [updates]").
		WithDescription("layer documents and overrides over a base document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeRun(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff the canonical forms of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-O format] [files]").
		WithDescription("convert documents between the sectioned form and yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertRun(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}
