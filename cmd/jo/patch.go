package main

import (
	"fmt"

	"github.com/signadot/jsonobj"
	"github.com/signadot/jsonobj/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	pd, err := readArg(cfg.File)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		o, err := parseArg(arg)
		if err != nil {
			return err
		}
		res, err := jsonobj.Patch(o, pd)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
