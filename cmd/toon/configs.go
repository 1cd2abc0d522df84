package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toonfmt/toon-format/go-toon/debug"
	"github.com/toonfmt/toon-format/go-toon/encode"
	"github.com/toonfmt/toon-format/go-toon/format"
	"github.com/toonfmt/toon-format/go-toon/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log decoded input to stderr'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
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

// inFormat resolves the input format for a path: flags first, then the
// file suffix, defaulting to JSON for data conversion.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return format.YAMLFormat
	case strings.HasSuffix(path, ".toon"):
		return format.ToonFormat
	default:
		return format.JSONFormat
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// decode reads one input into a structured value per the resolved
// format.  TOON input is rejected here: the serializer consumes
// decoded values, not TOON text.
func (cfg *MainConfig) decode(path string, d []byte) (*ir.Node, error) {
	var (
		node *ir.Node
		err  error
	)
	switch f := cfg.inFormat(path); f {
	case format.JSONFormat:
		node, err = ir.FromJSON(d)
	case format.YAMLFormat:
		node, err = ir.FromYAML(d)
	default:
		return nil, fmt.Errorf("%w: cannot decode %s input", format.ErrBadFormat, f)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		debug.Logf("%s decoded:\n%s\n", path, node)
	}
	return node, nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return d, nil
}

type ConvertConfig struct {
	*MainConfig
	Indent int `cli:"name=indent desc='spaces per indent level'"`
	Inline int `cli:"name=inline desc='max scalars for inline arrays'"`

	Convert *cli.Command
}

func (cfg *ConvertConfig) convertOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.encOpts(w)
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Inline > 0 {
		res = append(res, encode.InlineLimit(cfg.Inline))
	}
	return res
}

type ReflowConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place'"`
	Diff  bool `cli:"name=diff desc='print a diff instead of the result'"`

	Shrink bool

	Reflow *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='patch file (json)'"`
	Merge     bool   `cli:"name=m desc='treat the patch as an rfc 7396 merge patch'"`

	Patch *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='boolean expression over each element'"`
	Key  string `cli:"name=k desc='mapping key holding the array (default document root)'"`

	Filter *cli.Command
}
