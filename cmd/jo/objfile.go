package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/jsonobj/ir"
	"github.com/signadot/jsonobj/parse"
)

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func parseArg(arg string) (*ir.Object, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	o, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return o, nil
}

// splitPath turns a dotted path into segments, with "." naming the
// root.
func splitPath(s string) ir.Path {
	if s == "" || s == "." {
		return nil
	}
	return strings.Split(s, ".")
}

// orStdin substitutes stdin when no file arguments were given.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
