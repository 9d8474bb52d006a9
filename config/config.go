package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jsonobj/debug"
	"github.com/signadot/jsonobj/encode"
	"github.com/signadot/jsonobj/ir"
	"github.com/signadot/jsonobj/parse"
)

// Config holds a parsed configuration tree.
type Config struct {
	root *ir.Object
}

func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return FromBytes(d)
}

func FromBytes(d []byte) (*Config, error) {
	o, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	if debug.Config() {
		debug.Logf("loaded config %s\n", encode.MustString(o))
	}
	return &Config{root: o}, nil
}

func FromObject(o *ir.Object) *Config {
	return &Config{root: o}
}

func LoadYAML(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return FromYAML(d)
}

func FromYAML(d []byte) (*Config, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("yaml config: %w", err)
	}
	o, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	if debug.Config() {
		debug.LogAny(v)
	}
	return &Config{root: o}, nil
}

// Object returns the root of the configuration tree.
func (c *Config) Object() *ir.Object {
	return c.root
}

func (c *Config) Obj(path ...string) (*ir.Object, error) {
	o, err := c.root.Get(path)
	if err != nil {
		return nil, err
	}
	if !o.IsMap() {
		return nil, fmt.Errorf("%w: %q is %s, want %s", ir.ErrBadType,
			path, o.Type, ir.MapType)
	}
	return o, nil
}

func (c *Config) Arr(path ...string) ([]*ir.Object, error) {
	o, err := c.root.Get(path)
	if err != nil {
		return nil, err
	}
	return o.AsArray()
}

func (c *Config) Str(path ...string) (string, error) {
	o, err := c.root.Get(path)
	if err != nil {
		return "", err
	}
	return o.AsString()
}

func (c *Config) Int(path ...string) (int64, error) {
	o, err := c.root.Get(path)
	if err != nil {
		return 0, err
	}
	return o.AsInt()
}

func (c *Config) Float(path ...string) (float64, error) {
	o, err := c.root.Get(path)
	if err != nil {
		return 0, err
	}
	return o.AsFloat()
}

func (c *Config) Bool(path ...string) (bool, error) {
	o, err := c.root.Get(path)
	if err != nil {
		return false, err
	}
	return o.AsBool()
}

// AddProperty sets a key under the map at path, creating intermediate
// maps as needed.
func (c *Config) AddProperty(path ir.Path, prop ir.Property) error {
	_, err := c.root.AddProperty(path, prop)
	return err
}
