package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confweave/confweave"
	"github.com/confweave/confweave/ir"
)

type MainConfig struct {
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readTree loads one input, "-" meaning stdin. YAML inputs are
// detected by extension unless -y forces them.
func (cfg *MainConfig) readTree(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	if cfg.Y || isYAMLName(arg) {
		tree, err := confweave.FromYAML(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return tree, nil
	}
	tree, err := confweave.FromStr(string(d))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return tree, nil
}

func (cfg *MainConfig) writeTree(w io.Writer, tree *ir.Node) error {
	if cfg.Y {
		d, err := confweave.ToYAML(tree)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return confweave.Dump(tree, w)
}

func isYAMLName(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type ResolveConfig struct {
	*MainConfig

	Resolve *cli.Command
}

type MergeConfig struct {
	*MainConfig
	RemoveExtra bool `cli:"name=removeExtra desc='drop update keys absent from the base'"`
	Sets        []string

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=nocolor desc='disable colored output'"`

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	OutFormat string `cli:"name=O aliases=ofmt desc='output format: cfg, yaml/y'"`

	Convert *cli.Command
}
