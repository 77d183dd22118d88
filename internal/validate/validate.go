// Package validate checks every property value against the type inferred
// from its key.
//
// Overview:
//   - Responsibility: Report every key whose value is illegal for its inferred type
//   - Key Types: Error
//   - Concurrency Model: Stateless
//   - Error Semantics: Never short-circuits; an empty result means valid
//   - Performance Notes: One Infer and one Check per key
//
// Usage:
//
//	errs := validate.Properties(set)
//	for _, e := range errs {
//		diagnostics.Error(e.Error())
//	}
package validate

import (
	"fmt"

	"go.eggybyte.com/egg/propgen/propfile"
	"go.eggybyte.com/egg/propgen/proptype"
)

// Error is one rejected property.
type Error struct {
	Type  proptype.MethodType
	Key   string
	Value string
}

func (e Error) Error() string {
	return fmt.Sprintf("invalid value for key %q: type %s, value %q", e.Key, e.Type, e.Value)
}

// Properties validates every key of set exactly once, in set order.
func Properties(set *propfile.Set) []Error {
	var errs []Error
	for _, key := range set.Keys() {
		value, _ := set.Get(key)
		typ := proptype.Infer(key)
		if !typ.IsValid(value) {
			errs = append(errs, Error{Type: typ, Key: key, Value: value})
		}
	}
	return errs
}
