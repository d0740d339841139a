package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confweave/confweave"
)

func convertRun(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
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
		switch cfg.OutFormat {
		case "yaml", "y":
			d, err := confweave.ToYAML(tree)
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
		case "cfg", "":
			if err := confweave.Dump(tree, cc.Out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.OutFormat)
		}
	}
	return nil
}
