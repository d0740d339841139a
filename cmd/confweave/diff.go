package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confweave/confweave"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	a, err := cfg.readTree(args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readTree(args[1])
	if err != nil {
		return err
	}
	diffs, err := confweave.Diff(a, b)
	if err != nil {
		return err
	}
	return writeDiffs(cc.Out, diffs, cfg.useColor(cc.Out))
}

func (cfg *DiffConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.Color:
		return true
	case cfg.NoColor:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writeDiffs(w io.Writer, diffs []diffmatchpatch.Diff, colored bool) error {
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			var err error
			switch {
			case d.Type == diffmatchpatch.DiffInsert && colored:
				_, err = fmt.Fprintln(w, ins("+"+line))
			case d.Type == diffmatchpatch.DiffInsert:
				_, err = fmt.Fprintln(w, "+"+line)
			case d.Type == diffmatchpatch.DiffDelete && colored:
				_, err = fmt.Fprintln(w, del("-"+line))
			case d.Type == diffmatchpatch.DiffDelete:
				_, err = fmt.Fprintln(w, "-"+line)
			default:
				_, err = fmt.Fprintln(w, " "+line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}
