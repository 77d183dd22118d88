// Package configx binds environment settings into structs.
//
// Overview:
//   - Responsibility: Read prefixed environment variables, apply defaults, validate
//   - Key Types: Load, ValidatorOption
//   - Concurrency Model: Load reads the process environment once per call
//   - Error Semantics: Binding and validation failures are returned wrapped
//   - Performance Notes: One os.Environ scan per Load
//
// Fields are bound with `env:"NAME" default:"value"` tags, where NAME is
// looked up with the prefix prepended, and then checked with `validate` tags.
//
// Usage:
//
//	type Settings struct {
//		LogLevel string `env:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
//	}
//	var s Settings
//	err := configx.Load("PROPGEN_", &s) // reads PROPGEN_LOG_LEVEL
package configx

import (
	"fmt"

	"go.eggybyte.com/egg/propgen/configx/internal"
)

// Load binds the environment variables carrying prefix into target, a
// pointer to struct, and validates the result.
func Load(prefix string, target any, opts ...ValidatorOption) error {
	return Bind(internal.EnvSnapshot(prefix), target, opts...)
}

// Bind binds snapshot into target and validates the result. Snapshot keys
// are the env tag names without prefix.
func Bind(snapshot map[string]string, target any, opts ...ValidatorOption) error {
	if err := internal.BindToStruct(snapshot, target); err != nil {
		return fmt.Errorf("bind settings: %w", err)
	}
	return ValidateStruct(NewValidator(opts...), target)
}
