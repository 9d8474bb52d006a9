package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Locate bool
	Config bool
	Patch  bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JO_DEBUG_PARSE")
	d.Locate = boolEnv("JO_DEBUG_LOCATE")
	d.Config = boolEnv("JO_DEBUG_CONFIG")
	d.Patch = boolEnv("JO_DEBUG_PATCH")
	d.Diff = boolEnv("JO_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Locate() bool {
	return d.Locate
}
func Config() bool {
	return d.Config
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
