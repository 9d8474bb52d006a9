package main

import (
	"fmt"

	"github.com/signadot/jsonobj/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.EncodeColors(encode.NewColors()),
	}
	for _, arg := range orStdin(args) {
		o, err := parseArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(o, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
