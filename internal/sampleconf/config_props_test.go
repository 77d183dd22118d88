package sampleconf

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go.eggybyte.com/egg/propgen/propfile"
)

const envKey = "SAMPLECONF_ENV"

// freshRuntime replaces the process-wide runtime so each test initializes anew.
func freshRuntime(t *testing.T) {
	t.Helper()
	saved := configRuntime
	configRuntime = &configState{
		envProperties: propfile.NewSet(),
		properties:    propfile.NewSet(),
	}
	t.Cleanup(func() { configRuntime = saved })
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func TestOverlaySelection(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		unset    bool
		wantX    string
		wantPort int64
	}{
		{name: "overlay for env", env: "test", wantX: "2", wantPort: 9090},
		{name: "unset uses default env", unset: true, wantX: "2", wantPort: 9090},
		{name: "env without overlay", env: "prod", wantX: "1", wantPort: 8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freshRuntime(t)
			if tt.unset {
				unsetEnv(t, envKey)
			} else {
				t.Setenv(envKey, tt.env)
			}

			var c Config
			if err := c.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := c.X(); got != tt.wantX {
				t.Errorf("X() = %q, want %q", got, tt.wantX)
			}
			if got := c.ServerPort(); got != tt.wantPort {
				t.Errorf("ServerPort() = %d, want %d", got, tt.wantPort)
			}
			if got := c.ServerTimeout(); got != 30*time.Second {
				t.Errorf("ServerTimeout() = %v, want 30s", got)
			}
			if got := c.AppName(); got != "sample" {
				t.Errorf("AppName() = %q, want sample", got)
			}
		})
	}
}

func TestInitializesOnce(t *testing.T) {
	freshRuntime(t)
	t.Setenv(envKey, "test")

	var c Config
	if got := c.X(); got != "2" {
		t.Fatalf("X() = %q, want 2", got)
	}
	t.Setenv(envKey, "prod")
	if got := c.X(); got != "2" {
		t.Errorf("X() after env change = %q, want the first load to stick", got)
	}
}

func TestInvalidOverlayFailsFast(t *testing.T) {
	freshRuntime(t)
	t.Setenv(envKey, "bad")

	var c Config
	err := c.Load()
	var initErr *propfile.InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("Load() error = %v, want *propfile.InitError", err)
	}
	if initErr.Unit != "sampleconf.Config" {
		t.Errorf("Unit = %q", initErr.Unit)
	}
	for _, want := range []string{"sampleconf.Config initialize error", `"server.timeout"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
	if again := c.Load(); again != err {
		t.Errorf("second Load() = %v, want the stored error", again)
	}

	for name, access := range map[string]func(){
		"AppName":       func() { c.AppName() },
		"ServerTimeout": func() { c.ServerTimeout() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != err {
					t.Errorf("panic = %v, want the init error", r)
				}
			}()
			access()
		})
	}
}

func TestMissingResourceFailsFast(t *testing.T) {
	freshRuntime(t)
	t.Setenv(envKey, "test")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var c Config
	if err := c.Load(); err == nil {
		t.Fatal("Load() should fail when the resource is missing")
	}
}
