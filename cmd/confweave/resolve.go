package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confweave/confweave"
	"github.com/confweave/confweave/ir"
)

// resolveRun merges all input documents and interpolates references.
// The command holds no registry, so factory-marked mappings are kept
// as mappings rather than constructed.
func resolveRun(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	trees := make([]*ir.Node, 0, len(args))
	for _, arg := range args {
		tree, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		trees = append(trees, tree)
	}
	tree, err := confweave.Merge(trees[0], trees[1:])
	if err != nil {
		return err
	}
	res, err := confweave.Resolve(tree, nil, confweave.WithoutFactories())
	if err != nil {
		return fmt.Errorf("error resolving: %w", err)
	}
	return cfg.writeTree(cc.Out, res)
}
