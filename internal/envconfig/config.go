// Package envconfig reads STRIDE_* settings from the environment.
package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvVar describes one environment setting.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// clean strips quotes and spaces from the value of key.
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// Bool returns a reader for a boolean variable. Unset reads as false; a set
// value that does not parse as a bool reads as true.
func Bool(key string) func() bool {
	return func() bool {
		if s := clean(key); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

var (
	// Debug enables debug logging. Set via STRIDE_DEBUG.
	Debug = Bool("STRIDE_DEBUG")
	// NoFastPath forces the general index-translating kernel path.
	// Set via STRIDE_NO_FAST_PATH.
	NoFastPath = Bool("STRIDE_NO_FAST_PATH")
)

// AsMap returns every setting with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"STRIDE_DEBUG":        {"STRIDE_DEBUG", Debug(), "Show kernel and tape debug events (e.g. STRIDE_DEBUG=1)"},
		"STRIDE_NO_FAST_PATH": {"STRIDE_NO_FAST_PATH", NoFastPath(), "Disable positional fast paths in map/zip/reduce kernels"},
	}
}

// Values returns every setting formatted as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
