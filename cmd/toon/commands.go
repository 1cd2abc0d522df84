package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toon").
		WithSynopsis("toon [opts] command [opts]").
		WithDescription("toon converts structured data to TOON text and re-flows TOON tables.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toonMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			AlignCommand(cfg),
			ShrinkCommand(cfg),
			PatchCommand(cfg),
			FilterCommand(cfg))
}

func toonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithSynopsis("convert [opts] [files]").
		WithDescription("Convert JSON or YAML input to TOON text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func AlignCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReflowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("align").
		WithAliases("a", "al").
		WithSynopsis("align [-w|-diff] [files]").
		WithDescription("Pad tabular TOON rows to uniform column widths").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reflow(cfg, cc, args)
		})
	cfg.Reflow = cmd
	return cmd
}

func ShrinkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReflowConfig{MainConfig: mainCfg, Shrink: true}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("shrink").
		WithAliases("s", "sh").
		WithSynopsis("shrink [-w|-diff] [files]").
		WithDescription("Trim tabular TOON rows to minimal whitespace").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reflow(cfg, cc, args)
		})
	cfg.Reflow = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p patch.json [-m] [file]").
		WithDescription("Apply a JSON patch to the decoded input and emit TOON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithAliases("f", "fi").
		WithSynopsis("filter -e <expr> [-k key] [file]").
		WithDescription("Keep only array elements matching a boolean expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}
