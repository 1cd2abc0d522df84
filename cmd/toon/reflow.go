package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toonfmt/toon-format/go-toon/align"
	"github.com/toonfmt/toon-format/go-toon/format"
	"github.com/toonfmt/toon-format/go-toon/syntax"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func reflow(cfg *ReflowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reflow.Parse(cc, args)
	if err != nil {
		return err
	}
	// re-flowing operates on TOON text only
	if cfg.J || cfg.Y || (cfg.InFormat != nil && !cfg.InFormat.IsToon()) {
		return fmt.Errorf("%w: align/shrink take TOON input", format.ErrBadFormat)
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -diff are mutually exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := reflowFile(cfg, cc, path); err != nil {
			return err
		}
	}
	return nil
}

func reflowFile(cfg *ReflowConfig, cc *cli.Context, path string) error {
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	doc := string(d)
	var (
		out string
		rep align.Report
	)
	if cfg.Shrink {
		out, rep, err = align.ShrinkText(doc, syntax.LineScanner{})
	} else {
		out, rep, err = align.AlignText(doc, syntax.LineScanner{})
	}
	if err != nil {
		return fmt.Errorf("error re-flowing %s: %w", path, err)
	}
	switch {
	case cfg.Diff:
		if err := writeDiff(cc.Out, doc, out); err != nil {
			return err
		}
	case cfg.Write && path != "-":
		if out != doc {
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				return fmt.Errorf("could not rewrite %q: %w", path, err)
			}
		}
	default:
		if _, err := io.WriteString(cc.Out, out); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "%s: %d rows in %d regions\n", path, rep.Rows, rep.Regions)
	return nil
}

func writeDiff(w io.Writer, from, to string) error {
	if from == to {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			for _, ln := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
				if _, err := fmt.Fprintf(w, "+%s\n", ln); err != nil {
					return err
				}
			}
		case diffpatch.DiffDelete:
			for _, ln := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
				if _, err := fmt.Fprintf(w, "-%s\n", ln); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
