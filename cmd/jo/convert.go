package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jsonobj/config"
	"github.com/signadot/jsonobj/encode"
	"github.com/signadot/jsonobj/ir"
	"github.com/signadot/jsonobj/parse"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		var o *ir.Object
		if cfg.YAML || isYAMLFile(arg) {
			c, err := config.FromYAML(d)
			if err != nil {
				return fmt.Errorf("error decoding %s: %w", arg, err)
			}
			o = c.Object()
		} else {
			o, err = parse.Parse(d)
			if err != nil {
				return fmt.Errorf("error decoding %s: %w", arg, err)
			}
		}
		if err := encode.Encode(o, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func isYAMLFile(arg string) bool {
	return strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml")
}
