package generator

import (
	"go/token"
	"os"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"

	"go.eggybyte.com/egg/propgen/configx"
	"go.eggybyte.com/egg/propgen/core/errors"
	"go.eggybyte.com/egg/propgen/internal/keystyle"
	"go.eggybyte.com/egg/propgen/proptype"
)

// Request describes one generated unit. It is not modified during generation.
type Request struct {
	Resources   []string       `validate:"required,min=1,dive,required"`
	PackageName string         `validate:"omitempty,goident"`
	ClassName   string         `validate:"required,goident,ne=_"`
	KeyStyle    keystyle.Style `validate:"oneof=0 1 2"`
	EnvKey      string         `validate:"required"`
	EnvDefault  string

	// ResourceDir is the root resources are read from while generating.
	// Empty means the working directory.
	ResourceDir string
	// RuntimeDir is the root baked into the generated code. Empty means ResourceDir.
	RuntimeDir string
	// OutputDir is the directory of the generated file, relative to the sink root.
	OutputDir string
	// FileName overrides the generated file name.
	FileName string `validate:"omitempty,endswith=.go,excludesall=/\\"`
}

// PackageClause returns the package the unit is generated into. An empty
// PackageName means the package go generate runs in ($GOPACKAGE), else main.
func (r Request) PackageClause() string {
	if r.PackageName != "" {
		return r.PackageName
	}
	if pkg := os.Getenv("GOPACKAGE"); pkg != "" {
		return pkg
	}
	return "main"
}

// UnitName returns "{package}.{class}", or "{class}" for the default package.
func (r Request) UnitName() string {
	if r.PackageName == "" {
		return r.ClassName
	}
	return r.PackageName + "." + r.ClassName
}

// OutputFile returns the generated file name: FileName, or the snake_case
// class name with a _props.go suffix.
func (r Request) OutputFile() string {
	if r.FileName != "" {
		return r.FileName
	}
	segments := proptype.Segments(r.ClassName)
	for i := range segments {
		segments[i] = strings.ToLower(segments[i])
	}
	return strings.Join(segments, "_") + "_props.go"
}

// OutputPath returns the sink path of the unit: OutputFile inside OutputDir.
func (r Request) OutputPath() string {
	if r.OutputDir == "" {
		return r.OutputFile()
	}
	return path.Join(r.OutputDir, r.OutputFile())
}

func (r Request) resourceDir() string {
	if r.ResourceDir == "" {
		return "."
	}
	return r.ResourceDir
}

func (r Request) runtimeDir() string {
	if r.RuntimeDir == "" {
		return r.resourceDir()
	}
	return r.RuntimeDir
}

// newValidator returns a validator that understands the goident tag.
func newValidator() *validator.Validate {
	return configx.NewValidator(configx.WithValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	}))
}

func (g *Generator) checkRequest(req Request) error {
	if err := configx.ValidateStruct(g.validate, req); err != nil {
		return errors.Build(errors.CodeInvalidArgument).
			WithOp("generator.request").
			WithErr(err).
			Err()
	}
	return nil
}
