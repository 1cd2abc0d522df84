package main

import (
	"fmt"

	"github.com/toonfmt/toon-format/go-toon/encode"
	"github.com/toonfmt/toon-format/go-toon/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -e", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: filter takes at most one file", cli.ErrUsage)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	node, err := cfg.decode(path, d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	arr := node
	if cfg.Key != "" {
		if node.Type != ir.ObjectType {
			return fmt.Errorf("-k %s: input is not a mapping", cfg.Key)
		}
		arr = ir.Get(node, cfg.Key)
		if arr == nil {
			return fmt.Errorf("-k %s: no such key", cfg.Key)
		}
	}
	if arr.Type != ir.ArrayType {
		return fmt.Errorf("filter target is %s, not an array", arr.Type)
	}
	program, err := expr.Compile(cfg.Expr, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("bad expression %q: %w", cfg.Expr, err)
	}
	kept := []*ir.Node{}
	for _, elt := range arr.Values {
		env, _ := ir.ToAny(elt).(map[string]any)
		if env == nil {
			env = map[string]any{"value": ir.ToAny(elt)}
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", cfg.Expr, err)
		}
		if keep, _ := out.(bool); keep {
			kept = append(kept, elt.Clone())
		}
	}
	res := ir.FromSlice(kept)
	if cfg.Key != "" {
		m := ir.ToMap(node)
		m[cfg.Key] = res
		res = ir.FromMap(m)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
