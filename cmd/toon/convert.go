package main

import (
	"fmt"
	"io"

	"github.com/toonfmt/toon-format/go-toon/encode"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, path := range args {
		if err := convertFile(cfg, cc.Out, cc, path); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, w io.Writer, cc *cli.Context, path string) error {
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	node, err := cfg.decode(path, d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	if err := encode.Encode(node, w, cfg.convertOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return nil
}
