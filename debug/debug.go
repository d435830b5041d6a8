package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/segmentio/encoding/json"
)

type debug struct {
	Dispatch bool
	Skip     bool
	Pool     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("SD_DEBUG_DISPATCH")
	d.Skip = boolEnv("SD_DEBUG_SKIP")
	d.Pool = boolEnv("SD_DEBUG_POOL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Dispatch reports whether every dispatched value should be traced.
func Dispatch() bool {
	return d.Dispatch
}

// Skip reports whether tokens consumed while skipping should be traced.
func Skip() bool {
	return d.Skip
}

// Pool reports whether pool acquire/release/shrink should be traced.
func Pool() bool {
	return d.Pool
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

func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any:
			d, err := json.Marshal(args[i])
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
