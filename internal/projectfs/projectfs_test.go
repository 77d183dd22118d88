package projectfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateCommit(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)

	out, err := pfs.Create("conf.Config", "conf/config_props.go")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := out.Write([]byte("package conf\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if exists, _ := pfs.FileExists("conf/config_props.go"); exists {
		t.Fatal("output visible before Commit")
	}
	if err := out.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "conf", "config_props.go"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "package conf\n" {
		t.Errorf("content = %q", data)
	}
	assertOnlyFiles(t, filepath.Join(root, "conf"), "config_props.go")
}

func TestCreateAbortLeavesNothing(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)

	out, err := pfs.Create("Config", "config_props.go")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, _ = out.Write([]byte("partial"))
	if err := out.Abort(); err != nil {
		t.Fatalf("Abort() error = %v", err)
	}
	if err := out.Abort(); err != nil {
		t.Errorf("second Abort() error = %v", err)
	}
	if err := out.Commit(); err == nil {
		t.Error("Commit() after Abort() should fail")
	}
	assertOnlyFiles(t, root)
}

func TestCommitReplacesExisting(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)

	for _, content := range []string{"old", "new"} {
		out, err := pfs.Create("Config", "a.go")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, err := out.Write([]byte(content)); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := out.Commit(); err != nil {
			t.Fatalf("Commit() error = %v", err)
		}
	}
	data, _ := os.ReadFile(filepath.Join(root, "a.go"))
	if string(data) != "new" {
		t.Errorf("content = %q, want new", data)
	}
	assertOnlyFiles(t, root, "a.go")
}

func TestFileExists(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)
	if err := os.WriteFile(filepath.Join(root, "a.go"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"a.go", true},
		{"b.go", false},
		{"missing/a.go", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := pfs.FileExists(tt.path)
			if err != nil {
				t.Fatalf("FileExists() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCreateUnwritableRoot(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	pfs := NewProjectFS(blocker)
	if _, err := pfs.Create("Config", "config_props.go"); err == nil {
		t.Error("Create() should fail when the root is a file")
	}
}

func assertOnlyFiles(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != len(want) {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir contains %v, want %v", names, want)
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("entry %d = %s, want %s", i, e.Name(), want[i])
		}
	}
}
