package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("Expected non-empty version")
	}
}

func TestGetFullVersionInfo(t *testing.T) {
	info := GetFullVersionInfo()
	if !strings.HasPrefix(info, "readme-gen ") {
		t.Errorf("Expected info to start with binary name, got %q", info)
	}
	if !strings.Contains(info, Version) {
		t.Errorf("Expected info to contain version %q, got %q", Version, info)
	}
	if !strings.Contains(info, "go:") {
		t.Errorf("Expected info to contain go version, got %q", info)
	}
}
