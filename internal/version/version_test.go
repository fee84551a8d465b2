package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	}()

	Version = "1.2.0"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"

	info := GetInfo()

	if info.Version != "1.2.0" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("Commit = %q", info.Commit)
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("runtime fields should be populated: %+v", info)
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		Commit:    "abc123def456789",
		Date:      "2026-01-01",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()
	if !strings.Contains(s, "eventcal 1.2.0") {
		t.Errorf("String() = %q", s)
	}
	if strings.Contains(s, "abc123def456789") {
		t.Errorf("commit should be truncated to 8 chars: %q", s)
	}
	if !strings.Contains(s, "abc123de") {
		t.Errorf("String() should contain the short commit: %q", s)
	}
}

func TestShort(t *testing.T) {
	info := Info{Version: "1.2.0"}
	if info.Short() != "1.2.0" {
		t.Errorf("Short() = %q", info.Short())
	}
}
