package main

import (
	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		tree, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		if err := cfg.writeTree(cc.Out, tree); err != nil {
			return err
		}
	}
	return nil
}
