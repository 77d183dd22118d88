// Package proptype infers the semantic type of a property from its key and
// checks that a textual value is legal for that type.
//
// Overview:
//   - Responsibility: Key naming convention -> MethodType, per-type validity and parsing
//   - Key Types: MethodType, Rule
//   - Concurrency Model: Stateless; safe for concurrent use
//   - Error Semantics: Infer is total; Parse* return errors, Must* panic
//   - Performance Notes: Rules are evaluated in order, first match wins
//
// Generated accessors import this package, so its parsing rules are shared
// between build-time validation and runtime conversion.
//
// Usage:
//
//	t := proptype.Infer("server.timeout") // proptype.Duration
//	ok := t.IsValid("1500ms")             // true
package proptype

import (
	"strings"
	"unicode"
)

// MethodType is the semantic type of a property, chosen from its key.
type MethodType int

const (
	// String is the fallback type; every value is valid.
	String MethodType = iota
	// Int is a base-10 signed 64-bit integer.
	Int
	// Boolean is one of true/false/yes/no/on/off, case-insensitive.
	Boolean
	// Float is a finite float64.
	Float
	// Duration is a Go duration literal such as 1500ms or 2m30s.
	Duration
	// List is a comma separated list of non-blank items.
	List
	// URL is an absolute URL with scheme and host.
	URL
)

var typeNames = map[MethodType]string{
	String:   "STRING",
	Int:      "INT",
	Boolean:  "BOOLEAN",
	Float:    "FLOAT",
	Duration: "DURATION",
	List:     "LIST",
	URL:      "URL",
}

// String returns the upper-case type name, e.g. "INT".
func (t MethodType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Ident returns the exported identifier of t in this package, e.g. "Duration".
func (t MethodType) Ident() string {
	switch t {
	case Int:
		return "Int"
	case Boolean:
		return "Boolean"
	case Float:
		return "Float"
	case Duration:
		return "Duration"
	case List:
		return "List"
	case URL:
		return "URL"
	default:
		return "String"
	}
}

// GoType returns the Go type an accessor of this type returns.
func (t MethodType) GoType() string {
	switch t {
	case Int:
		return "int64"
	case Boolean:
		return "bool"
	case Float:
		return "float64"
	case Duration:
		return "time.Duration"
	case List:
		return "[]string"
	case URL:
		return "*url.URL"
	default:
		return "string"
	}
}

// Import returns the standard library import GoType needs, or "".
func (t MethodType) Import() string {
	switch t {
	case Duration:
		return "time"
	case URL:
		return "net/url"
	default:
		return ""
	}
}

// Converter returns the name of the Must* function in this package that
// converts a raw value to GoType. String needs no conversion and returns "".
func (t MethodType) Converter() string {
	switch t {
	case Int:
		return "MustInt"
	case Boolean:
		return "MustBool"
	case Float:
		return "MustFloat"
	case Duration:
		return "MustDuration"
	case List:
		return "MustList"
	case URL:
		return "MustURL"
	default:
		return ""
	}
}

// IsValid reports whether value is syntactically legal for t.
func (t MethodType) IsValid(value string) bool {
	return t.Check(value) == nil
}

// Check returns the parse error for value, or nil when it is legal for t.
func (t MethodType) Check(value string) error {
	var err error
	switch t {
	case Int:
		_, err = ParseInt(value)
	case Boolean:
		_, err = ParseBool(value)
	case Float:
		_, err = ParseFloat(value)
	case Duration:
		_, err = ParseDuration(value)
	case List:
		_, err = ParseList(value)
	case URL:
		_, err = ParseURL(value)
	}
	return err
}

// Types returns every MethodType in declaration order.
func Types() []MethodType {
	return []MethodType{String, Int, Boolean, Float, Duration, List, URL}
}

// Rule maps keys matching Match to Type.
type Rule struct {
	Name  string
	Type  MethodType
	Match func(segments []string) bool
}

func lastIn(words ...string) func([]string) bool {
	set := toSet(words)
	return func(segments []string) bool {
		return len(segments) > 0 && set[segments[len(segments)-1]]
	}
}

func firstIn(words ...string) func([]string) bool {
	set := toSet(words)
	return func(segments []string) bool {
		return len(segments) > 1 && set[segments[0]]
	}
}

func anyOf(fns ...func([]string) bool) func([]string) bool {
	return func(segments []string) bool {
		for _, fn := range fns {
			if fn(segments) {
				return true
			}
		}
		return false
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Rules is the ordered rule list used by Infer. The final String rule matches everything.
var Rules = []Rule{
	{Name: "list suffix", Type: List, Match: lastIn("list", "csv", "items")},
	{Name: "boolean suffix or prefix", Type: Boolean, Match: anyOf(
		lastIn("enabled", "disabled", "flag", "bool", "boolean"),
		firstIn("is", "has", "use", "enable"),
	)},
	{Name: "duration suffix", Type: Duration, Match: lastIn("duration", "timeout", "interval", "ttl", "delay", "period")},
	{Name: "int suffix", Type: Int, Match: lastIn("int", "count", "size", "port", "num", "number", "max", "min", "limit", "retries")},
	{Name: "float suffix", Type: Float, Match: lastIn("float", "double", "ratio", "rate", "percent", "factor")},
	{Name: "url suffix", Type: URL, Match: lastIn("url", "uri", "endpoint")},
	{Name: "default", Type: String, Match: func([]string) bool { return true }},
}

// Infer returns the MethodType for key. It never fails.
func Infer(key string) MethodType {
	segments := Segments(key)
	for i := range segments {
		segments[i] = strings.ToLower(segments[i])
	}
	for _, rule := range Rules {
		if rule.Match(segments) {
			return rule.Type
		}
	}
	return String
}

// Segments splits key on every rune that is not a letter or digit and on
// lower-to-upper camel-case boundaries, keeping the original case.
//
//	Segments("db.maxConnections") // ["db", "max", "Connections"]
//	Segments("HTTPServer_port")   // ["HTTP", "Server", "port"]
func Segments(key string) []string {
	var (
		segments []string
		current  []rune
	)
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, string(current))
			current = current[:0]
		}
	}

	runes := []rune(key)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := current[len(current)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return segments
}
