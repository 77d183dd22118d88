// Package keystyle maps property keys to accessor names.
//
// Overview:
//   - Responsibility: Closed set of naming strategies, Go identifier rules, collision detection
//   - Key Types: Style, Accessor, NameError
//   - Concurrency Model: Pure functions
//   - Error Semantics: Build reports every unusable or colliding name, joined into one error
//   - Performance Notes: Linear in the number of keys
//
// Usage:
//
//	style, err := keystyle.ParseStyle("getter")
//	accessors, err := keystyle.Build(set, style, "Config")
//	// server.timeout -> func (Config) GetServerTimeout() time.Duration
package keystyle

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.eggybyte.com/egg/propgen/propfile"
	"go.eggybyte.com/egg/propgen/proptype"
)

// Style is a naming strategy for generated accessors.
type Style int

const (
	// Method generates value methods named after the key: Config.ServerTimeout().
	Method Style = iota
	// Getter generates value methods with a Get prefix: Config.GetServerTimeout().
	Getter
	// Func generates package-level functions prefixed with the class: ConfigServerTimeout().
	Func
)

var styleNames = []string{"method", "getter", "func"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// Styles returns every strategy.
func Styles() []Style {
	return []Style{Method, Getter, Func}
}

// ParseStyle resolves a strategy by name, ignoring case. Empty means Method.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Method, nil
	}
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return Method, fmt.Errorf("unknown key style %q (want one of %s)", name, strings.Join(styleNames, ", "))
}

// reserved are method names the generated runtime already declares on the class.
var reserved = map[string]bool{"Load": true}

// Accessor is one generated declaration.
type Accessor struct {
	Name string
	Key  string
	Type proptype.MethodType
	// Receiver is the class type for methods, empty for package-level functions.
	Receiver string
}

// IsMethod reports whether the accessor is declared on the class type.
func (a Accessor) IsMethod() bool {
	return a.Receiver != ""
}

// ErrInvalidName is wrapped by every NameError.
var ErrInvalidName = errors.New("invalid accessor name")

// NameError describes a key that cannot become an accessor.
type NameError struct {
	Key    string
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("key %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("key %q: accessor %s %s", e.Key, e.Name, e.Reason)
}

func (e *NameError) Unwrap() error {
	return ErrInvalidName
}

// Build applies style to every key of set, in set order. The result is
// identical for identical input.
func Build(set *propfile.Set, style Style, className string) ([]Accessor, error) {
	accessors := make([]Accessor, 0, set.Len())
	owners := make(map[string]string, set.Len())
	var errs []error

	for _, key := range set.Keys() {
		base := Identifier(key)
		if base == "" {
			errs = append(errs, &NameError{Key: key, Reason: "has no letters or digits"})
			continue
		}

		acc := Accessor{Key: key, Type: proptype.Infer(key)}
		switch style {
		case Getter:
			acc.Name = "Get" + base
			acc.Receiver = className
		case Func:
			acc.Name = className + base
		default:
			acc.Name = base
			if r, _ := utf8.DecodeRuneInString(base); !unicode.IsUpper(r) {
				acc.Name = "Key" + base
			}
			acc.Receiver = className
		}

		if acc.IsMethod() && reserved[acc.Name] {
			errs = append(errs, &NameError{Key: key, Name: acc.Name, Reason: "is reserved"})
			continue
		}
		if other, ok := owners[acc.Name]; ok {
			errs = append(errs, &NameError{Key: key, Name: acc.Name, Reason: fmt.Sprintf("collides with key %q", other)})
			continue
		}
		owners[acc.Name] = key
		accessors = append(accessors, acc)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return accessors, nil
}

var initialisms = map[string]bool{
	"id": true, "url": true, "http": true, "api": true, "json": true,
	"xml": true, "sql": true, "ttl": true, "tls": true, "ip": true,
	"dns": true, "tcp": true, "udp": true, "uri": true, "cpu": true,
}

// Identifier converts key to a CamelCase identifier without any prefix.
// It returns "" when key has no letters or digits.
//
//	Identifier("db.max_connections") // DbMaxConnections
//	Identifier("api.base-url")       // APIBaseURL
func Identifier(key string) string {
	var b strings.Builder
	for _, seg := range proptype.Segments(key) {
		if initialisms[strings.ToLower(seg)] {
			b.WriteString(strings.ToUpper(seg))
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}
