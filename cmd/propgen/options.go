package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/propgen/internal/generator"
	"go.eggybyte.com/egg/propgen/internal/keystyle"
	"go.eggybyte.com/egg/propgen/internal/manifest"
	"go.eggybyte.com/egg/propgen/internal/ui"
)

// targetOptions holds the flags shared by generate and check.
type targetOptions struct {
	resources   []string
	pkg         string
	class       string
	keyStyle    string
	envKey      string
	envDefault  string
	resourceDir string
	runtimeDir  string
	outputDir   string
	file        string
	manifest    string
}

func (o *targetOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&o.resources, "resource", "r", nil, "Property resource, repeatable; later resources override earlier ones")
	flags.StringVar(&o.pkg, "package", "", "Package of the generated unit (default $GOPACKAGE, else main)")
	flags.StringVar(&o.class, "class", "", "Name of the generated type")
	flags.StringVar(&o.keyStyle, "key-style", keystyle.Method.String(), "Accessor naming: method, getter or func")
	flags.StringVar(&o.envKey, "env-key", manifest.DefaultEnvKey, "Environment variable selecting the overlay")
	flags.StringVar(&o.envDefault, "env-default", manifest.DefaultEnvDefault, "Environment used when the variable is unset")
	flags.StringVar(&o.resourceDir, "resource-dir", "", "Directory resources are read from (default $PROPGEN_RESOURCE_DIR, else .)")
	flags.StringVar(&o.runtimeDir, "runtime-dir", "", "Directory the generated code reads resources from (default --resource-dir)")
	flags.StringVar(&o.outputDir, "output-dir", "", "Directory of the generated file (default $PROPGEN_OUTPUT_DIR, else .)")
	flags.StringVar(&o.file, "file", "", "Generated file name (default <snake_class>_props.go)")
	flags.StringVar(&o.manifest, "manifest", "", "Generate every target of a propgen.yaml manifest")
}

// targetFlags cannot be combined with --manifest.
var targetFlags = []string{"resource", "package", "class", "key-style", "env-key", "env-default", "resource-dir", "runtime-dir", "output-dir", "file"}

// requests builds the generator requests from the manifest or the flags.
func (o *targetOptions) requests(cmd *cobra.Command, settings Settings) ([]generator.Request, error) {
	if o.manifest != "" {
		for _, name := range targetFlags {
			if cmd.Flags().Changed(name) {
				return nil, fmt.Errorf("--%s cannot be used with --manifest", name)
			}
		}
		return manifestRequests(o.manifest)
	}

	if len(o.resources) == 0 {
		return nil, fmt.Errorf("at least one --resource is required")
	}
	if o.class == "" {
		return nil, fmt.Errorf("--class is required")
	}
	style, err := keystyle.ParseStyle(o.keyStyle)
	if err != nil {
		return nil, err
	}

	resourceDir := o.resourceDir
	if !cmd.Flags().Changed("resource-dir") {
		resourceDir = settings.ResourceDir
	}
	outputDir := o.outputDir
	if !cmd.Flags().Changed("output-dir") {
		outputDir = settings.OutputDir
	}

	return []generator.Request{{
		Resources:   append([]string(nil), o.resources...),
		PackageName: o.pkg,
		ClassName:   o.class,
		KeyStyle:    style,
		EnvKey:      o.envKey,
		EnvDefault:  o.envDefault,
		ResourceDir: resourceDir,
		RuntimeDir:  o.runtimeDir,
		OutputDir:   outputDir,
		FileName:    o.file,
	}}, nil
}

func manifestRequests(path string) ([]generator.Request, error) {
	m, diags := manifest.Load(path)
	for _, d := range diags.Items() {
		text := d.Message
		if d.Path != "" {
			text = d.Path + ": " + text
		}
		if d.Suggestion != "" {
			text += " (" + d.Suggestion + ")"
		}
		if d.Severity == manifest.SeverityError {
			ui.Error("%s", text)
		} else {
			ui.Warning("%s", text)
		}
	}
	if diags.HasErrors() || m == nil {
		return nil, fmt.Errorf("invalid manifest %s", path)
	}
	return m.Requests()
}
