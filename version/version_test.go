package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("Version should never be empty")
	}
}

func TestShort(t *testing.T) {
	s := Short()
	if s == "" {
		t.Fatal("Short() returned empty string")
	}
	if !strings.HasPrefix(s, Version) {
		t.Errorf("Short() = %q, want prefix %q", s, Version)
	}
}
