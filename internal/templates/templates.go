// Package templates provides template loading and rendering for generated units.
//
// Overview:
//   - Responsibility: Load embedded templates and render them with unit data
//   - Key Types: Loader, UnitData, ResourceData, AccessorData
//   - Concurrency Model: Immutable embedded templates; safe for concurrent use
//   - Error Semantics: Template errors wrap the template path
//   - Performance Notes: Templates are parsed per render; rendering stays in memory
//
// Usage:
//
//	loader := NewLoader()
//	source, err := loader.LoadAndRender(UnitTemplate, data)
package templates

import (
	"embed"
	"fmt"
	"path"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*
var templateFS embed.FS

// UnitTemplate is the template for one generated source unit.
const UnitTemplate = "unit.go.tmpl"

// UnitData holds everything the unit template renders.
//
// Parameters:
//   - Package: Package clause of the generated file
//   - Class: Exported class type name (e.g., "Config")
//   - Unit: Qualified unit name used in init errors (e.g., "conf.Config")
//   - StateType, StateVar, BindingsVar: Unexported runtime identifiers
//   - StdImports, ModImports: Sorted import groups
//   - Resources: Resources in load order
//   - Accessors: Accessors in key order
//   - RuntimeDir: Resource root opened by the generated code
//   - EnvKey, EnvDefault: Environment selection
//
// Concurrency:
//
//	Safe for concurrent read access after initialization.
type UnitData struct {
	Package     string         // Package clause
	Class       string         // Class type name
	Unit        string         // "{package}.{class}" or "{class}"
	StateType   string         // Runtime state type name
	StateVar    string         // Runtime state variable name
	BindingsVar string         // Type binding table name
	StdImports  []string       // Standard library imports
	ModImports  []string       // Module imports
	Resources   []ResourceData // Resources in load order
	Accessors   []AccessorData // Accessors in key order
	RuntimeDir  string         // Root passed to os.DirFS
	EnvKey      string         // Environment variable selecting the overlay
	EnvDefault  string         // Environment used when EnvKey is unset
}

// ResourceData describes one resource of a unit.
type ResourceData struct {
	Name          string // Resource identifier
	Encoding      string // Encoding name, e.g. "xml"
	EncodingIdent string // propfile identifier, e.g. "XML"
}

// AccessorData describes one generated accessor.
type AccessorData struct {
	Name      string // Go identifier
	Key       string // Property key
	Receiver  string // Class type for methods, empty for functions
	GoType    string // Return type
	Converter string // proptype Must* function, empty for strings
	TypeName  string // Type name for docs, e.g. "DURATION"
	TypeIdent string // proptype identifier, e.g. "Duration"
}

// Loader provides template loading and rendering functionality.
//
// Concurrency:
//   - Safe for concurrent use
type Loader struct {
	templateDir string
}

// NewLoader creates a new template loader.
//
// Returns:
//   - *Loader: Template loader reading the embedded templates
func NewLoader() *Loader {
	return &Loader{
		templateDir: "templates",
	}
}

// LoadTemplate loads a template file from the embedded filesystem.
//
// Parameters:
//   - templatePath: Path to template file relative to templates directory
//
// Returns:
//   - string: Template content
//   - error: Loading error if any
func (l *Loader) LoadTemplate(templatePath string) (string, error) {
	content, err := templateFS.ReadFile(path.Join(l.templateDir, templatePath))
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", templatePath, err)
	}
	return string(content), nil
}

// RenderTemplate renders a template with the provided data.
//
// Parameters:
//   - name: Template name used in error messages
//   - templateContent: Template content
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: Parse or execution error if any
//
// Performance:
//   - Template parsing and rendering, in memory
func (l *Loader) RenderTemplate(name, templateContent string, data any) (string, error) {
	funcMap := template.FuncMap{
		"quote": strconv.Quote,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return result.String(), nil
}

// LoadAndRender loads a template and renders it with data.
//
// Parameters:
//   - templatePath: Path to template file
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: Loading or rendering error if any
func (l *Loader) LoadAndRender(templatePath string, data any) (string, error) {
	content, err := l.LoadTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return l.RenderTemplate(templatePath, content, data)
}
