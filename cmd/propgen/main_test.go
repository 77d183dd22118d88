package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/propgen/internal/generator"
	"go.eggybyte.com/egg/propgen/internal/keystyle"
	"go.eggybyte.com/egg/propgen/internal/ui"
)

func setup(t *testing.T) (dir string, out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	ui.SetOutput(out, errOut)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })
	t.Setenv("PROPGEN_LOG_LEVEL", "error")
	t.Setenv("PROPGEN_RESOURCE_DIR", "")
	t.Setenv("PROPGEN_OUTPUT_DIR", "")
	return t.TempDir(), out, errOut
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func run(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestGenerateWritesUnit(t *testing.T) {
	dir, out, _ := setup(t)
	writeFile(t, filepath.Join(dir, "app.properties"), "app.name=demo\nserver.port=8080\n")

	err := run(newGenerateCmd(),
		"-r", "app.properties",
		"--class", "Config",
		"--package", "conf",
		"--resource-dir", dir,
		"--output-dir", dir)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	source, err := os.ReadFile(filepath.Join(dir, "config_props.go"))
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	for _, want := range []string{"package conf", "type Config struct{}", "func (Config) ServerPort() int"} {
		if !strings.Contains(string(source), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
	if !strings.Contains(out.String(), "Generated conf.Config with 2 accessors") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestGenerateReportsOverwrite(t *testing.T) {
	dir, out, _ := setup(t)
	writeFile(t, filepath.Join(dir, "app.properties"), "app.name=demo\n")
	args := []string{"-r", "app.properties", "--class", "Config", "--resource-dir", dir, "--output-dir", dir}

	if err := run(newGenerateCmd(), args...); err != nil {
		t.Fatalf("first generate error = %v", err)
	}
	if strings.Contains(out.String(), "Overwriting") {
		t.Errorf("first run should not overwrite: %q", out.String())
	}
	out.Reset()
	if err := run(newGenerateCmd(), args...); err != nil {
		t.Fatalf("second generate error = %v", err)
	}
	if !strings.Contains(out.String(), "Overwriting "+filepath.Join(dir, "config_props.go")) {
		t.Errorf("second run should report the overwrite: %q", out.String())
	}
}

func TestGenerateInvalidValueWritesNothing(t *testing.T) {
	dir, _, errOut := setup(t)
	writeFile(t, filepath.Join(dir, "app.properties"), "server.port=8080\n")
	writeFile(t, filepath.Join(dir, "override.properties"), "server.port=eighty\n")

	err := run(newGenerateCmd(),
		"-r", "app.properties", "-r", "override.properties",
		"--class", "Config", "--package", "conf",
		"--resource-dir", dir, "--output-dir", dir)
	if err == nil {
		t.Fatal("generate should fail for an invalid value")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "config_props.go")); !os.IsNotExist(statErr) {
		t.Errorf("no file should be written, stat error = %v", statErr)
	}
	if !strings.Contains(errOut.String(), "conf.Config: generation failed") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestGenerateManifest(t *testing.T) {
	dir, _, _ := setup(t)
	writeFile(t, filepath.Join(dir, "resources", "app.properties"), "app.name=demo\n")
	writeFile(t, filepath.Join(dir, "resources", "db.yaml"), "db:\n  pool: 4\n")
	writeFile(t, filepath.Join(dir, "propgen.yaml"), `resource_dir: resources
output_dir: gen
targets:
  - package: conf
    class: Config
    resources: [app.properties]
  - package: conf
    class: Database
    resources: [db.yaml]
    key_style: getter
`)

	if err := run(newGenerateCmd(), "--manifest", filepath.Join(dir, "propgen.yaml")); err != nil {
		t.Fatalf("generate error = %v", err)
	}
	for _, name := range []string{"config_props.go", "database_props.go"} {
		if _, err := os.Stat(filepath.Join(dir, "gen", name)); err != nil {
			t.Errorf("%s not generated: %v", name, err)
		}
	}
}

func TestManifestRejectsTargetFlags(t *testing.T) {
	setup(t)
	err := run(newGenerateCmd(), "--manifest", "propgen.yaml", "--class", "Config")
	if err == nil || !strings.Contains(err.Error(), "--class cannot be used with --manifest") {
		t.Errorf("error = %v", err)
	}
}

func TestInvalidManifestReportsDiagnostics(t *testing.T) {
	dir, _, errOut := setup(t)
	err := run(newGenerateCmd(), "--manifest", filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Fatal("generate should fail for a missing manifest")
	}
	if !strings.Contains(errOut.String(), "Manifest file not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestCheck(t *testing.T) {
	dir, out, _ := setup(t)
	writeFile(t, filepath.Join(dir, "app.json"), `{"app": {"debug": true, "ratio": 0.5}}`)

	if err := run(newCheckCmd(), "-r", "app.json", "--class", "Config", "--resource-dir", dir); err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out.String(), "Config: 2 properties valid") {
		t.Errorf("stdout = %q", out.String())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("check should not write files, dir has %d entries", len(entries))
	}
}

func TestRequestsFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		settings Settings
		want     generator.Request
		wantErr  string
	}{
		{
			name: "defaults",
			args: []string{"-r", "app.properties", "--class", "Config"},
			want: generator.Request{
				Resources:  []string{"app.properties"},
				ClassName:  "Config",
				KeyStyle:   keystyle.Method,
				EnvKey:     "APP_ENV",
				EnvDefault: "dev",
			},
		},
		{
			name:     "settings fill unset dirs",
			args:     []string{"-r", "a.toml", "--class", "Config", "--key-style", "func"},
			settings: Settings{ResourceDir: "res", OutputDir: "out"},
			want: generator.Request{
				Resources:   []string{"a.toml"},
				ClassName:   "Config",
				KeyStyle:    keystyle.Func,
				EnvKey:      "APP_ENV",
				EnvDefault:  "dev",
				ResourceDir: "res",
				OutputDir:   "out",
			},
		},
		{
			name:     "flags win over settings",
			args:     []string{"-r", "a.xml", "-r", "b.xml", "--class", "Config", "--resource-dir", "flag", "--env-key", "MODE", "--env-default", "prod", "--file", "cfg.go"},
			settings: Settings{ResourceDir: "res"},
			want: generator.Request{
				Resources:   []string{"a.xml", "b.xml"},
				ClassName:   "Config",
				KeyStyle:    keystyle.Method,
				EnvKey:      "MODE",
				EnvDefault:  "prod",
				ResourceDir: "flag",
				FileName:    "cfg.go",
			},
		},
		{
			name:    "missing resource",
			args:    []string{"--class", "Config"},
			wantErr: "--resource",
		},
		{
			name:    "missing class",
			args:    []string{"-r", "app.properties"},
			wantErr: "--class",
		},
		{
			name:    "unknown key style",
			args:    []string{"-r", "app.properties", "--class", "Config", "--key-style", "snake"},
			wantErr: "snake",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &targetOptions{}
			cmd := &cobra.Command{Use: "test"}
			opts.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}

			got, err := opts.requests(cmd, tt.settings)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("requests() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("requests() error = %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("requests() returned %d requests", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("requests() = %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestSettingsValidation(t *testing.T) {
	t.Setenv("PROPGEN_LOG_LEVEL", "loud")
	if _, err := loadSettings(); err == nil {
		t.Error("loadSettings() should reject an unknown log level")
	}
}

func TestSettingsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Settings{LogLevel: "error", LogFormat: "logfmt"}.Logger(&buf, true)
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}
	logger.Debug("state transition")
	if !strings.Contains(buf.String(), "state transition") {
		t.Errorf("verbose logger should emit debug records, got %q", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	if !strings.HasPrefix(out.String(), "propgen version ") {
		t.Errorf("version output = %q", out.String())
	}
}
