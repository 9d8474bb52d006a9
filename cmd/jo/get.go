package main

import (
	"fmt"

	"github.com/signadot/jsonobj/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := splitPath(args[0])
	for _, arg := range orStdin(args[1:]) {
		o, err := parseArg(arg)
		if err != nil {
			return err
		}
		res, err := o.Get(path)
		if err != nil {
			return fmt.Errorf("error getting %q from %s: %w", args[0], arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
