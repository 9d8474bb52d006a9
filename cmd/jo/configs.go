package main

import (
	"io"
	"os"

	"github.com/signadot/jsonobj/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indent step for multi-line output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.WireOut {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File string `cli:"name=p desc='patch file'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	YAML bool `cli:"name=y aliases=yaml desc='treat input as yaml'"`

	Convert *cli.Command
}
