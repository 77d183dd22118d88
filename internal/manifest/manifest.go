// Package manifest loads propgen.yaml, a list of generation targets.
//
// Overview:
//   - Responsibility: Parse propgen.yaml, fill defaults, validate, build generator requests
//   - Key Types: Manifest, Target, Diagnostics
//   - Concurrency Model: Immutable manifest after loading
//   - Error Semantics: Problems are collected as Diagnostics with paths and suggestions
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	m, diags := manifest.Load("propgen.yaml")
//	if diags.HasErrors() {
//	    return diags
//	}
//	requests, err := m.Requests()
package manifest

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go.eggybyte.com/egg/propgen/internal/generator"
	"go.eggybyte.com/egg/propgen/internal/keystyle"
)

// Default values applied to a manifest.
const (
	DefaultEnvKey     = "APP_ENV"
	DefaultEnvDefault = "dev"
	DefaultKeyStyle   = "method"
)

// Manifest represents a complete propgen.yaml.
//
// Parameters:
//   - ResourceDir: Root resources are read from, relative to the manifest
//   - RuntimeDir: Root baked into generated code (default: ResourceDir)
//   - OutputDir: Directory generated files are written to, relative to the manifest
//   - EnvKey, EnvDefault, KeyStyle: Defaults inherited by every target
//   - Targets: Units to generate
//
// Concurrency:
//   - Immutable after loading
type Manifest struct {
	ResourceDir string   `yaml:"resource_dir"`
	RuntimeDir  string   `yaml:"runtime_dir"`
	OutputDir   string   `yaml:"output_dir"`
	EnvKey      string   `yaml:"env_key"`
	EnvDefault  string   `yaml:"env_default"`
	KeyStyle    string   `yaml:"key_style"`
	Targets     []Target `yaml:"targets"`

	// dir is the directory holding the manifest; relative paths resolve from it.
	dir string
}

// Target defines one generated unit.
type Target struct {
	Package    string   `yaml:"package"`
	Class      string   `yaml:"class"`
	Resources  []string `yaml:"resources"`
	KeyStyle   string   `yaml:"key_style"`
	EnvKey     string   `yaml:"env_key"`
	EnvDefault string   `yaml:"env_default"`
	File       string   `yaml:"file"`
}

// Load reads, defaults and validates the manifest at path.
//
// Parameters:
//   - path: Manifest file path
//
// Returns:
//   - *Manifest: Parsed manifest with defaults applied, nil when unreadable
//   - *Diagnostics: Validation issues found
//
// Concurrency:
//   - Single-threaded file I/O
func Load(path string) (*Manifest, *Diagnostics) {
	diags := NewDiagnostics()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			diags.AddError("Manifest file not found", path, "Create propgen.yaml or pass --manifest")
		} else {
			diags.AddError(fmt.Sprintf("Failed to read manifest: %v", err), path, "Check file permissions")
		}
		return nil, diags
	}

	m, parseDiags := Parse(data)
	parseDiags.prefixPaths(path)
	if m == nil {
		return nil, parseDiags
	}
	m.dir = filepath.Dir(path)
	return m, parseDiags
}

// Parse decodes manifest YAML, applies defaults and validates it. Relative
// directories resolve from the working directory.
func Parse(data []byte) (*Manifest, *Diagnostics) {
	diags := NewDiagnostics()

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		diags.AddError(fmt.Sprintf("Failed to parse YAML: %v", err), "", "Check YAML syntax")
		return nil, diags
	}

	applyDefaults(&m)
	validateManifest(&m, diags)
	return &m, diags
}

// applyDefaults fills in default values for missing settings. Targets
// inherit the top-level env and key style settings.
func applyDefaults(m *Manifest) {
	if m.ResourceDir == "" {
		m.ResourceDir = "."
	}
	if m.RuntimeDir == "" {
		m.RuntimeDir = m.ResourceDir
	}
	if m.OutputDir == "" {
		m.OutputDir = "."
	}
	if m.EnvKey == "" {
		m.EnvKey = DefaultEnvKey
	}
	if m.EnvDefault == "" {
		m.EnvDefault = DefaultEnvDefault
	}
	if m.KeyStyle == "" {
		m.KeyStyle = DefaultKeyStyle
	}

	for i := range m.Targets {
		t := &m.Targets[i]
		if t.KeyStyle == "" {
			t.KeyStyle = m.KeyStyle
		}
		if t.EnvKey == "" {
			t.EnvKey = m.EnvKey
		}
		if t.EnvDefault == "" {
			t.EnvDefault = m.EnvDefault
		}
	}
}

// validateManifest checks what can be checked without reading resources.
func validateManifest(m *Manifest, diags *Diagnostics) {
	if len(m.Targets) == 0 {
		diags.AddError("No targets defined", "targets", "Add at least one entry under targets")
	}
	if _, err := keystyle.ParseStyle(m.KeyStyle); err != nil {
		diags.AddError(err.Error(), "key_style", "Use method, getter or func")
	}

	seenClass := make(map[string]int)
	seenRuntime := make(map[string]int)
	seenFile := make(map[string]int)
	for i, t := range m.Targets {
		path := fmt.Sprintf("targets[%d]", i)

		if t.Class == "" {
			diags.AddError("class is required", path+".class", "Set the generated type name, e.g. Config")
		} else if !token.IsIdentifier(t.Class) || t.Class == "_" {
			diags.AddError(fmt.Sprintf("class %q is not a Go identifier", t.Class), path+".class", "Use letters, digits and underscores")
		}
		if t.Package != "" && !token.IsIdentifier(t.Package) {
			diags.AddError(fmt.Sprintf("package %q is not a Go identifier", t.Package), path+".package", "Use the package name, not its import path")
		}
		if len(t.Resources) == 0 {
			diags.AddError("resources are required", path+".resources", "List at least one resource file")
		}
		for j, r := range t.Resources {
			if strings.TrimSpace(r) == "" {
				diags.AddError("resource is empty", fmt.Sprintf("%s.resources[%d]", path, j), "Remove the empty entry")
			}
		}
		if _, err := keystyle.ParseStyle(t.KeyStyle); err != nil {
			diags.AddError(err.Error(), path+".key_style", "Use method, getter or func")
		}

		unit := t.Package + "." + t.Class
		if prev, ok := seenClass[unit]; ok && t.Class != "" {
			diags.AddError(fmt.Sprintf("duplicate unit %s (also targets[%d])", strings.TrimPrefix(unit, "."), prev), path, "Give each target a distinct class")
		}
		seenClass[unit] = i

		runtime := t.Package + "." + generator.RuntimeBase(t.Class)
		if prev, ok := seenRuntime[runtime]; ok && t.Class != "" && m.Targets[prev].Class != t.Class {
			diags.AddError(fmt.Sprintf("class %s declares the same runtime identifiers as %s (targets[%d])", t.Class, m.Targets[prev].Class, prev), path+".class", "Rename one of the classes")
		}
		if t.Class != "" {
			seenRuntime[runtime] = i
		}

		file := t.outputFile()
		if prev, ok := seenFile[file]; ok && t.Class != "" {
			diags.AddWarning(fmt.Sprintf("output file %s is also written by targets[%d]", file, prev), path+".file", "Set a distinct file")
		}
		seenFile[file] = i
	}
}

func (t Target) outputFile() string {
	return generator.Request{ClassName: t.Class, FileName: t.File}.OutputFile()
}

// Requests converts every target into a generator request, resolving the
// directories against the manifest location.
func (m *Manifest) Requests() ([]generator.Request, error) {
	requests := make([]generator.Request, 0, len(m.Targets))
	for i, t := range m.Targets {
		style, err := keystyle.ParseStyle(t.KeyStyle)
		if err != nil {
			return nil, fmt.Errorf("targets[%d]: %w", i, err)
		}
		requests = append(requests, generator.Request{
			Resources:   append([]string(nil), t.Resources...),
			PackageName: t.Package,
			ClassName:   t.Class,
			KeyStyle:    style,
			EnvKey:      t.EnvKey,
			EnvDefault:  t.EnvDefault,
			ResourceDir: m.resolve(m.ResourceDir),
			RuntimeDir:  m.RuntimeDir,
			OutputDir:   m.resolve(m.OutputDir),
			FileName:    t.File,
		})
	}
	return requests, nil
}

// resolve joins a relative dir to the manifest directory. RuntimeDir is not
// resolved: it is interpreted by the generated program, not by propgen.
func (m *Manifest) resolve(dir string) string {
	if m.dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.dir, dir)
}
