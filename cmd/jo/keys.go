package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires one argument, an object path", cli.ErrUsage)
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
		ks, err := res.Keys()
		if err != nil {
			return fmt.Errorf("error listing keys of %q in %s: %w", args[0], arg, err)
		}
		for _, k := range ks {
			fmt.Fprintln(cc.Out, k)
		}
	}
	return nil
}
