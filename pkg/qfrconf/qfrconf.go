// Package qfrconf holds the handful of compile-time-ish constants the core
// needs, loadable from an optional TOML file so a host application can tune
// them without a rebuild.
package qfrconf

import (
	"github.com/BurntSushi/toml"
)

// Config is the tunable surface of the core.
type Config struct {
	// MaxQubits bounds the width of the `line` array the external DD
	// engine is asked to size; exceeding it is a fatal
	// qfrerr.CapacityExceeded.
	MaxQubits int `toml:"max_qubits"`
	// AngleSnapTolerance is a tolerance for snapping a rotation divisor to
	// an integer (spec §9 open question: exposed as configuration rather
	// than hard-coded). It is loaded but not read by any parser: pkg/revlib
	// accepts integer divisors only and canonicalizes them by exact value.
	AngleSnapTolerance float64 `toml:"angle_snap_tolerance"`
}

// Default returns the compiled-in defaults used when no config file is
// supplied.
func Default() Config {
	return Config{
		MaxQubits:          128,
		AngleSnapTolerance: 1e-10,
	}
}

// Load reads a TOML config file, starting from Default() and overwriting
// whichever fields the file sets.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
