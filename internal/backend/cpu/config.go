package cpu

import "github.com/rs/zerolog"

// Config controls how the CPU backend runs its kernels.
type Config struct {
	FastPath bool           // Use positional iteration when layouts allow it.
	Logger   zerolog.Logger // Receives debug events for every kernel call.
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		FastPath: true,
		Logger:   zerolog.Nop(),
	}
}
