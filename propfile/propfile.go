// Package propfile loads property resources and resolves environment overlays.
//
// Overview:
//   - Responsibility: Read key/value pairs from flat or structured resources, overlay naming, layered loading
//   - Key Types: Set, Encoding, Binding, ResourceError, InitError
//   - Concurrency Model: Set is not synchronized; generated code writes it once under sync.Once
//   - Error Semantics: Load failures return *ResourceError naming the resource
//   - Performance Notes: Resources are decoded in a single pass
//
// The package is used twice: by the generator at build time and by generated
// code at run time, so both sides read resources the same way.
//
// Usage:
//
//	set, err := propfile.Load(os.DirFS("resources"), "app.properties", "db.xml")
//	overlay := propfile.OverlayName("app.properties", "prod") // app_prod.properties
package propfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"go.eggybyte.com/egg/propgen/proptype"
)

// Set is a case-sensitive key -> raw value mapping. Re-inserting a key
// overwrites its value. Keys iterate in sorted order.
type Set struct {
	values map[string]string
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// Put stores value under key, replacing any previous value.
func (s *Set) Put(key, value string) {
	s.values[key] = value
}

// Get returns the value for key and whether it is present.
func (s *Set) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of keys.
func (s *Set) Len() int {
	return len(s.values)
}

// Keys returns all keys in sorted order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies every pair of other into s, overwriting existing keys.
func (s *Set) Merge(other *Set) {
	for k, v := range other.values {
		s.values[k] = v
	}
}

// ResourceError reports a resource that could not be opened or decoded.
type ResourceError struct {
	Resource string
	Encoding Encoding
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("load %s resource %q: %v", e.Encoding, e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// InitError is raised by generated code when its properties cannot be loaded.
// Once raised, the generated unit stays unusable for the life of the process.
type InitError struct {
	Unit string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s initialize error: %v", e.Unit, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Load reads every resource, in order, into one Set. Each resource's
// encoding is detected from its name; later resources overwrite earlier keys.
func Load(fsys fs.FS, resources ...string) (*Set, error) {
	set := NewSet()
	for _, resource := range resources {
		if err := LoadInto(fsys, resource, DetectEncoding(resource), set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// LoadInto decodes one resource with enc and stores its pairs in into.
func LoadInto(fsys fs.FS, resource string, enc Encoding, into *Set) error {
	f, err := fsys.Open(resourcePath(resource))
	if err != nil {
		return &ResourceError{Resource: resource, Encoding: enc, Err: err}
	}
	defer f.Close()

	if err := Decode(f, enc, into); err != nil {
		return &ResourceError{Resource: resource, Encoding: enc, Err: err}
	}
	return nil
}

// Exists reports whether resource names a regular file in fsys.
func Exists(fsys fs.FS, resource string) bool {
	info, err := fs.Stat(fsys, resourcePath(resource))
	return err == nil && !info.IsDir()
}

// OverlayName inserts "_<env>" before the extension of resource, splitting
// at the last '.'. A name without '.' gets the suffix appended.
//
//	OverlayName("settings.xml", "staging") // settings_staging.xml
func OverlayName(resource, env string) string {
	i := strings.LastIndex(resource, ".")
	if i < 0 {
		return resource + "_" + env
	}
	return resource[:i] + "_" + env + resource[i:]
}

// Environment returns the value of the environment variable key, or def
// when it is unset. A variable set to the empty string counts as set.
func Environment(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// LoadLayered loads the overlay of resource for env into envProps when it
// exists, then always loads resource itself into props. Both use enc.
func LoadLayered(fsys fs.FS, resource string, enc Encoding, env string, envProps, props *Set) error {
	overlay := OverlayName(resource, env)
	if Exists(fsys, overlay) {
		if err := LoadInto(fsys, overlay, enc, envProps); err != nil {
			return err
		}
	}
	return LoadInto(fsys, resource, enc, props)
}

// Binding ties a generated accessor's key to its inferred type.
type Binding struct {
	Key  string
	Type proptype.MethodType
}

// Verify checks that every binding resolves through lookup to a value legal
// for its type. All failures are joined into the returned error.
func Verify(bindings []Binding, lookup func(key string) (string, bool)) error {
	var errs []error
	for _, b := range bindings {
		value, ok := lookup(b.Key)
		if !ok {
			errs = append(errs, fmt.Errorf("property %q is missing", b.Key))
			continue
		}
		if err := b.Type.Check(value); err != nil {
			errs = append(errs, fmt.Errorf("property %q (%s): %w", b.Key, b.Type, err))
		}
	}
	return errors.Join(errs...)
}

// resourcePath turns a resource identifier into an fs.FS path.
func resourcePath(resource string) string {
	p := path.Clean(strings.TrimPrefix(resource, "/"))
	if p == "" {
		return "."
	}
	return p
}
