package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Driver bool
	Parse  bool
	Watch  bool
	Encode bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Driver = boolEnv("RIB_DEBUG_DRIVER")
	d.Parse = boolEnv("RIB_DEBUG_PARSE")
	d.Watch = boolEnv("RIB_DEBUG_WATCH")
	d.Encode = boolEnv("RIB_DEBUG_ENCODE")
	d.Query = boolEnv("RIB_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Driver() bool {
	return d.Driver
}
func Parse() bool {
	return d.Parse
}
func Watch() bool {
	return d.Watch
}
func Encode() bool {
	return d.Encode
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
