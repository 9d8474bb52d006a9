package config

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/jsonobj/ir"
)

// Eval compiles and runs src against the configuration tree. The tree
// is the expression environment, so top-level keys are identifiers:
//
//	c.Eval(`server.port + 1`)
//
// The result converts back to an object via ir.FromAny.
func (c *Config) Eval(src string) (*ir.Object, error) {
	env, ok := ir.ToAny(c.root).(map[string]any)
	if !ok {
		env = map[string]any{}
	}
	prg, err := expr.Compile(src, exprOpts(env)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	return ir.FromAny(res)
}

func exprOpts(env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
