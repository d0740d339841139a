package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confweave/confweave"
	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/parse"
)

func (cfg *MergeConfig) setOpt(cc *cli.Context, a string) (any, error) {
	if !strings.Contains(a, "=") {
		return nil, fmt.Errorf("%w: -s argument %q expected path=value", cli.ErrUsage, a)
	}
	cfg.Sets = append(cfg.Sets, a)
	return a, nil
}

func mergeRun(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a base document", cli.ErrUsage)
	}
	base, err := cfg.readTree(args[0])
	if err != nil {
		return err
	}
	updates := make([]*ir.Node, 0, len(args))
	for _, arg := range args[1:] {
		u, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		updates = append(updates, u)
	}
	if len(cfg.Sets) > 0 {
		u, err := setsTree(cfg.Sets)
		if err != nil {
			return err
		}
		updates = append(updates, u)
	}
	var opts []confweave.MergeOption
	if cfg.RemoveExtra {
		opts = append(opts, confweave.WithRemoveExtra())
	}
	res, err := confweave.Merge(base, updates, opts...)
	if err != nil {
		return err
	}
	return cfg.writeTree(cc.Out, res)
}

// setsTree builds an update mapping from -s path=value arguments.
// Values use the literal grammar with a plain-string fallback, so
// shell words need no extra quoting.
func setsTree(sets []string) (*ir.Node, error) {
	res := ir.FromKeyVals()
	for _, s := range sets {
		key, raw, _ := strings.Cut(s, "=")
		v, err := parse.Literal(strings.TrimSpace(raw))
		if err != nil {
			if !errors.Is(err, parse.ErrValue) {
				return nil, fmt.Errorf("-s %s: %w", key, err)
			}
			v = ir.FromString(strings.TrimSpace(raw))
		}
		res.Set(strings.TrimSpace(key), v)
	}
	return res, nil
}
