package testingx

import (
	stderrors "errors"
	"testing"

	"go.eggybyte.com/egg/propgen/core/errors"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error(stderrors.New("boom"), "error message")

	entries := logger.Entries()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, level := range levels {
		if entries[i].Level != level {
			t.Errorf("entry %d level = %s, want %s", i, entries[i].Level, level)
		}
	}
	if len(entries[0].Fields) != 2 {
		t.Errorf("Expected 2 fields, got %d", len(entries[0].Fields))
	}
	if entries[3].Error == nil || entries[3].Error.Error() != "boom" {
		t.Errorf("Error entry should carry the error, got %v", entries[3].Error)
	}

	logger.AssertLogged("INFO", "info message")
	logger.AssertNotLogged("INFO", "never")
}

func TestMockLoggerWithSharesEntries(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("unit", "conf.Config")
	child.Info("generated", "accessors", 3)

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].Fields; len(got) != 4 || got[0] != "unit" || got[2] != "accessors" {
		t.Errorf("Fields = %v", got)
	}

	logger.Clear()
	if len(logger.Entries()) != 0 {
		t.Error("Clear should remove all entries")
	}
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()

	out, err := sink.Create("conf.Config", "conf/config_props.go")
	AssertNoError(t, err)
	_, _ = out.Write([]byte("package conf\n"))
	if _, ok := sink.File("conf/config_props.go"); ok {
		t.Fatal("file visible before Commit")
	}
	AssertNoError(t, out.Commit())

	data, ok := sink.File("conf/config_props.go")
	if !ok || string(data) != "package conf\n" {
		t.Errorf("File() = %q, %v", data, ok)
	}
	if sink.Unit("conf/config_props.go") != "conf.Config" {
		t.Errorf("Unit() = %q", sink.Unit("conf/config_props.go"))
	}

	aborted, _ := sink.Create("Other", "other.go")
	_, _ = aborted.Write([]byte("x"))
	AssertNoError(t, aborted.Abort())
	if got := sink.Paths(); len(got) != 1 {
		t.Errorf("Paths() = %v, want one committed path", got)
	}
	if sink.Aborted != 1 {
		t.Errorf("Aborted = %d, want 1", sink.Aborted)
	}
}

func TestMemorySinkInjectedErrors(t *testing.T) {
	sink := NewMemorySink()
	sink.CreateErr = stderrors.New("read-only")
	if _, err := sink.Create("Config", "a.go"); err == nil {
		t.Error("Create should return CreateErr")
	}

	sink.CreateErr = nil
	sink.WriteErr = stderrors.New("disk full")
	out, _ := sink.Create("Config", "a.go")
	if _, err := out.Write([]byte("x")); err == nil {
		t.Error("Write should return WriteErr")
	}
}

func TestDiagnostics(t *testing.T) {
	d := NewDiagnostics()
	d.Error("first")
	d.Error("second")
	if got := d.Messages(); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Messages() = %v", got)
	}
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New(errors.CodeIO, "disk full"), errors.CodeIO)
	AssertNoError(t, nil)
}
