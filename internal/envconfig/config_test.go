package envconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":        false,
		"1":       true,
		"true":    true,
		"false":   false,
		"0":       false,
		"'true'":  true,
		" false ": false,
		"random":  true,
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("STRIDE_DEBUG", value)
			assert.Equal(t, want, Debug())
		})
	}
}

func TestValues(t *testing.T) {
	t.Setenv("STRIDE_DEBUG", "")
	t.Setenv("STRIDE_NO_FAST_PATH", "1")

	vals := Values()
	assert.Equal(t, "false", vals["STRIDE_DEBUG"])
	assert.Equal(t, "true", vals["STRIDE_NO_FAST_PATH"])
}
