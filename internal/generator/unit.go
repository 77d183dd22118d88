package generator

import (
	"fmt"
	"go/format"
	"sort"
	"unicode"
	"unicode/utf8"

	"go.eggybyte.com/egg/propgen/internal/keystyle"
	"go.eggybyte.com/egg/propgen/internal/templates"
)

// Import paths of the packages generated code depends on.
const (
	PropfileImport = "go.eggybyte.com/egg/propgen/propfile"
	ProptypeImport = "go.eggybyte.com/egg/propgen/proptype"
)

// RuntimeBase returns the prefix of the unexported runtime identifiers
// generated for class. Classes sharing a package must not share a base.
func RuntimeBase(class string) string {
	r, size := utf8.DecodeRuneInString(class)
	return string(unicode.ToLower(r)) + class[size:]
}

// runtimeNames returns the unexported identifiers the generated runtime
// declares for class: state type, state variable and binding table.
func runtimeNames(class string) (stateType, stateVar, bindings string) {
	base := RuntimeBase(class)
	return base + "State", base + "Runtime", base + "Bindings"
}

// checkRuntimeNames rejects package-level accessors that would redeclare a
// runtime identifier or the class type itself.
func checkRuntimeNames(accessors []keystyle.Accessor, class string) error {
	stateType, stateVar, bindings := runtimeNames(class)
	taken := map[string]bool{stateType: true, stateVar: true, bindings: true, class: true}
	for _, a := range accessors {
		if !a.IsMethod() && taken[a.Name] {
			return &keystyle.NameError{Key: a.Key, Name: a.Name, Reason: "collides with a generated declaration"}
		}
	}
	return nil
}

func (g *Generator) render(p *plan) ([]byte, error) {
	stateType, stateVar, bindings := runtimeNames(p.req.ClassName)
	data := templates.UnitData{
		Package:     p.pkgClause,
		Class:       p.req.ClassName,
		Unit:        p.unitName,
		StateType:   stateType,
		StateVar:    stateVar,
		BindingsVar: bindings,
		RuntimeDir:  p.req.runtimeDir(),
		EnvKey:      p.req.EnvKey,
		EnvDefault:  p.req.EnvDefault,
	}
	data.StdImports, data.ModImports = unitImports(p.accessors)

	for i, resource := range p.req.Resources {
		data.Resources = append(data.Resources, templates.ResourceData{
			Name:          resource,
			Encoding:      p.encodings[i].String(),
			EncodingIdent: p.encodings[i].Ident(),
		})
	}
	for _, a := range p.accessors {
		data.Accessors = append(data.Accessors, templates.AccessorData{
			Name:      a.Name,
			Key:       a.Key,
			Receiver:  a.Receiver,
			GoType:    a.Type.GoType(),
			Converter: a.Type.Converter(),
			TypeName:  a.Type.String(),
			TypeIdent: a.Type.Ident(),
		})
	}

	rendered, err := g.loader.LoadAndRender(templates.UnitTemplate, data)
	if err != nil {
		return nil, err
	}
	source, err := format.Source([]byte(rendered))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return source, nil
}

// unitImports returns the sorted standard library and module imports used by
// a unit with the given accessors. Unused imports do not compile, so only
// types that appear are imported.
func unitImports(accessors []keystyle.Accessor) (std, mod []string) {
	seen := map[string]bool{"os": true, "sync": true}
	for _, a := range accessors {
		if imp := a.Type.Import(); imp != "" {
			seen[imp] = true
		}
	}
	for imp := range seen {
		std = append(std, imp)
	}
	sort.Strings(std)

	mod = []string{PropfileImport}
	if len(accessors) > 0 {
		mod = append(mod, ProptypeImport)
	}
	return std, mod
}
