package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	got := GetVersionString()
	if !strings.HasPrefix(got, "propgen version "+Version) {
		t.Errorf("GetVersionString() = %q", got)
	}
}

func TestGetFullVersionInfo(t *testing.T) {
	got := GetFullVersionInfo()
	if !strings.Contains(got, runtime.Version()) {
		t.Errorf("GetFullVersionInfo() = %q, missing Go version", got)
	}
}
