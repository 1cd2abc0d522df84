package main

import (
	"fmt"
	"os"

	"github.com/toonfmt/toon-format/go-toon/encode"
	"github.com/toonfmt/toon-format/go-toon/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: patch takes at most one file", cli.ErrUsage)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", cfg.PatchFile, err)
	}
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	node, err := cfg.decode(path, d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	// patching runs over the JSON projection of the decoded value
	doc, err := ir.MarshalJSON(node)
	if err != nil {
		return err
	}
	var patched []byte
	if cfg.Merge {
		patched, err = jsonpatch.MergePatch(doc, pd)
	} else {
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch(pd)
		if err == nil {
			patched, err = ops.Apply(doc)
		}
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", path, err)
	}
	res, err := ir.FromJSON(patched)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
