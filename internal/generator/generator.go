// Package generator turns property resources into a typed Go source unit.
//
// Overview:
//   - Responsibility: Load, validate, name, render and emit one unit per Request
//   - Key Types: Generator, Request, Unit, State, Diagnostics
//   - Concurrency Model: A Generator runs one request at a time; use one per goroutine
//   - Error Semantics: *errors.E with INVALID_ARGUMENT, RESOURCE_LOAD, VALIDATION_FAILED, IO or INTERNAL
//   - Performance Notes: The unit is rendered and formatted in memory before the sink is opened
//
// A generation moves through INIT -> LOADED -> VALIDATED -> EMITTING -> DONE.
// Any failure moves it to FAILED, reports a summary to the Diagnostics and
// leaves no output behind.
//
// Usage:
//
//	gen := generator.New(generator.Options{Logger: logger, Sink: projectfs.NewProjectFS(".")})
//	unit, err := gen.Generate(ctx, generator.Request{
//		Resources:  []string{"app.properties"},
//		ClassName:  "Config",
//		EnvKey:     "APP_ENV",
//		EnvDefault: "dev",
//	})
package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"

	"go.eggybyte.com/egg/propgen/core/errors"
	"go.eggybyte.com/egg/propgen/core/log"
	"go.eggybyte.com/egg/propgen/internal/keystyle"
	"go.eggybyte.com/egg/propgen/internal/projectfs"
	"go.eggybyte.com/egg/propgen/internal/templates"
	"go.eggybyte.com/egg/propgen/internal/validate"
	"go.eggybyte.com/egg/propgen/propfile"
)

// State is the progress of one generation.
type State int

const (
	StateInit State = iota
	StateLoaded
	StateValidated
	StateEmitting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateLoaded:
		return "LOADED"
	case StateValidated:
		return "VALIDATED"
	case StateEmitting:
		return "EMITTING"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("STATE(%d)", int(s))
	}
}

// Diagnostics receives user-facing error messages.
type Diagnostics interface {
	Error(msg string)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Error(string) {}

// Options configures a Generator.
type Options struct {
	Logger      log.Logger     // Defaults to log.Nop()
	Sink        projectfs.Sink // Required by Generate
	Diagnostics Diagnostics    // Defaults to discarding
	// ResourceFS opens the resource root of a request. Defaults to os.DirFS.
	ResourceFS func(dir string) fs.FS
}

// Generator runs generation requests.
type Generator struct {
	logger      log.Logger
	sink        projectfs.Sink
	diagnostics Diagnostics
	resourceFS  func(dir string) fs.FS
	validate    *validator.Validate
	loader      *templates.Loader
	state       State
}

// New creates a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		logger:      opts.Logger,
		sink:        opts.Sink,
		diagnostics: opts.Diagnostics,
		resourceFS:  opts.ResourceFS,
		validate:    newValidator(),
		loader:      templates.NewLoader(),
	}
	if g.logger == nil {
		g.logger = log.Nop()
	}
	if g.diagnostics == nil {
		g.diagnostics = nopDiagnostics{}
	}
	if g.resourceFS == nil {
		g.resourceFS = func(dir string) fs.FS { return os.DirFS(dir) }
	}
	return g
}

// State returns the state reached by the most recent request.
func (g *Generator) State() State {
	return g.state
}

// Unit is a generated source unit.
type Unit struct {
	Name      string // "{package}.{class}" or "{class}"
	Package   string // Package clause
	Class     string
	Path      string // Path passed to the sink
	Source    []byte // gofmt-ed source
	Resources []string
	Accessors []keystyle.Accessor
}

// plan is the result of the load, validate and naming steps.
type plan struct {
	req        Request
	props      *propfile.Set
	accessors  []keystyle.Accessor
	encodings  []propfile.Encoding
	logger     log.Logger
	unitName   string
	pkgClause  string
	outputPath string
}

// Check loads and validates req without emitting anything. It returns the
// merged properties.
func (g *Generator) Check(ctx context.Context, req Request) (*propfile.Set, error) {
	p, err := g.prepare(ctx, req)
	if err != nil {
		return nil, g.fail(req, err)
	}
	return p.props, nil
}

// Generate runs req to completion and writes the unit to the sink.
func (g *Generator) Generate(ctx context.Context, req Request) (*Unit, error) {
	p, err := g.prepare(ctx, req)
	if err != nil {
		return nil, g.fail(req, err)
	}

	unit, err := g.emit(ctx, p)
	if err != nil {
		return nil, g.fail(req, err)
	}
	g.transition(p.logger, StateDone)

	p.logger.Info("unit generated",
		log.Str("path", unit.Path),
		log.Int("accessors", len(unit.Accessors)),
		log.Strs("resources", unit.Resources))
	return unit, nil
}

func (g *Generator) prepare(ctx context.Context, req Request) (*plan, error) {
	g.state = StateInit
	if err := g.checkRequest(req); err != nil {
		return nil, err
	}

	p := &plan{
		req:       req,
		unitName:  req.UnitName(),
		pkgClause: req.PackageClause(),
		logger:    g.logger.With(log.Str("unit", req.UnitName())),
	}
	p.outputPath = req.OutputPath()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "generator.load", err)
	}
	if err := g.load(p); err != nil {
		return nil, err
	}
	g.transition(p.logger, StateLoaded)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "generator.validate", err)
	}
	if err := g.check(p); err != nil {
		return nil, err
	}
	g.transition(p.logger, StateValidated)
	return p, nil
}

func (g *Generator) load(p *plan) error {
	props, err := propfile.Load(g.resourceFS(p.req.resourceDir()), p.req.Resources...)
	if err != nil {
		return errors.Wrap(errors.CodeResourceLoad, "generator.load", err)
	}
	p.props = props
	for _, resource := range p.req.Resources {
		enc := propfile.DetectEncoding(resource)
		p.encodings = append(p.encodings, enc)
		p.logger.Debug("resource loaded", log.Str("resource", resource), log.Str("encoding", enc.String()))
	}
	return nil
}

func (g *Generator) check(p *plan) error {
	if errs := validate.Properties(p.props); len(errs) > 0 {
		details := make([]any, 0, len(errs))
		for _, e := range errs {
			g.diagnostics.Error(e.Error())
			details = append(details, e)
		}
		return errors.Build(errors.CodeValidation).
			WithOp("generator.validate").
			WithMsgf("%d invalid properties in %s", len(errs), p.unitName).
			WithDetails(details...).
			Err()
	}

	accessors, err := keystyle.Build(p.props, p.req.KeyStyle, p.req.ClassName)
	if err == nil {
		err = checkRuntimeNames(accessors, p.req.ClassName)
	}
	if err != nil {
		details := splitErrors(err)
		for _, e := range details {
			g.diagnostics.Error(e.(error).Error())
		}
		return errors.Build(errors.CodeValidation).
			WithOp("generator.names").
			WithMsgf("invalid accessor names in %s", p.unitName).
			WithErr(err).
			WithDetails(details...).
			Err()
	}
	p.accessors = accessors
	return nil
}

func (g *Generator) emit(ctx context.Context, p *plan) (*Unit, error) {
	g.transition(p.logger, StateEmitting)

	source, err := g.render(p)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "generator.render", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "generator.emit", err)
	}
	if g.sink == nil {
		return nil, errors.New(errors.CodeInternal, "generator has no output sink")
	}

	out, err := g.sink.Create(p.unitName, p.outputPath)
	if err != nil {
		return nil, errors.Wrapf(errors.CodeIO, "generator.emit", err, "failed to write %s", p.unitName)
	}
	if _, err := out.Write(source); err != nil {
		_ = out.Abort()
		return nil, errors.Wrapf(errors.CodeIO, "generator.emit", err, "failed to write %s", p.unitName)
	}
	if err := out.Commit(); err != nil {
		return nil, errors.Wrapf(errors.CodeIO, "generator.emit", err, "failed to write %s", p.unitName)
	}

	return &Unit{
		Name:      p.unitName,
		Package:   p.pkgClause,
		Class:     p.req.ClassName,
		Path:      p.outputPath,
		Source:    source,
		Resources: append([]string(nil), p.req.Resources...),
		Accessors: p.accessors,
	}, nil
}

func (g *Generator) transition(logger log.Logger, to State) {
	logger.Debug("state transition", log.Str("from", g.state.String()), log.Str("to", to.String()))
	g.state = to
}

// fail records the terminal state and reports a one-line summary.
func (g *Generator) fail(req Request, err error) error {
	logger := g.logger.With(log.Str("unit", req.UnitName()))
	g.transition(logger, StateFailed)
	logger.Error(err, "generation failed", log.Str("code", string(errors.CodeOf(err))))
	g.diagnostics.Error(fmt.Sprintf("%s: generation failed: %v", req.UnitName(), err))
	return err
}

func splitErrors(err error) []any {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		out := make([]any, 0, len(errs))
		for _, e := range errs {
			out = append(out, e)
		}
		return out
	}
	return []any{err}
}
