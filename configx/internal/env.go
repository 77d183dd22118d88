// Package internal provides the environment snapshot and struct binding behind configx.
package internal

import (
	"os"
	"strings"
)

// EnvSnapshot returns every environment variable whose name starts with
// prefix, keyed by the name with the prefix removed.
func EnvSnapshot(prefix string) map[string]string {
	snapshot := make(map[string]string)
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		snapshot[strings.TrimPrefix(key, prefix)] = value
	}
	return snapshot
}
