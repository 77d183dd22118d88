package proptype

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseInt parses a base-10 signed 64-bit integer.
func ParseInt(value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", value)
	}
	return n, nil
}

// ParseBool accepts true/false, yes/no and on/off in any case.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", value)
	}
}

// ParseFloat parses a finite float64.
func ParseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", value)
	}
	return f, nil
}

// ParseDuration parses a Go duration literal.
func ParseDuration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("not a duration: %q", value)
	}
	return d, nil
}

// ParseList splits a comma separated value. A blank value is the empty
// list; a blank item anywhere else is an error.
func ParseList(value string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return []string{}, nil
	}
	parts := strings.Split(trimmed, ",")
	items := make([]string, 0, len(parts))
	for i, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			return nil, fmt.Errorf("blank list item %d in %q", i, value)
		}
		items = append(items, item)
	}
	return items, nil
}

// ParseURL parses an absolute URL that has both scheme and host.
func ParseURL(value string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("not an absolute URL: %q", value)
	}
	return u, nil
}

// MustInt is ParseInt for values already checked; it panics on error.
func MustInt(value string) int64 {
	n, err := ParseInt(value)
	if err != nil {
		panic(err)
	}
	return n
}

// MustBool is ParseBool for values already checked; it panics on error.
func MustBool(value string) bool {
	b, err := ParseBool(value)
	if err != nil {
		panic(err)
	}
	return b
}

// MustFloat is ParseFloat for values already checked; it panics on error.
func MustFloat(value string) float64 {
	f, err := ParseFloat(value)
	if err != nil {
		panic(err)
	}
	return f
}

// MustDuration is ParseDuration for values already checked; it panics on error.
func MustDuration(value string) time.Duration {
	d, err := ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}

// MustList is ParseList for values already checked; it panics on error.
func MustList(value string) []string {
	items, err := ParseList(value)
	if err != nil {
		panic(err)
	}
	return items
}

// MustURL is ParseURL for values already checked; it panics on error.
func MustURL(value string) *url.URL {
	u, err := ParseURL(value)
	if err != nil {
		panic(err)
	}
	return u
}
