package main

import (
	"fmt"

	"github.com/signadot/jsonobj"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := parseArg(args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(args[1])
	if err != nil {
		return err
	}
	d := jsonobj.Diff(a, b)
	if d == "" {
		return nil
	}
	fmt.Fprintln(cc.Out, d)
	return cli.ExitCodeErr(1)
}
