package cli

import (
	"runtime/debug"
	"testing"
)

func TestResolvedVersionPrefersExplicitValue(t *testing.T) {
	if got := resolvedVersion("1.2.3"); got != "1.2.3" {
		t.Fatalf("expected explicit version, got %q", got)
	}
}

func TestResolvedVersionFallsBackToDev(t *testing.T) {
	original := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return nil, false
	}
	t.Cleanup(func() { readBuildInfo = original })

	if got := resolvedVersion("dev"); got != devVersion {
		t.Fatalf("expected dev fallback, got %q", got)
	}
}

func TestResolvedVersionUsesRevision(t *testing.T) {
	original := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef1234567890"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true
	}
	t.Cleanup(func() { readBuildInfo = original })

	if got := resolvedVersion(""); got != "abcdef123456-dirty" {
		t.Fatalf("expected truncated dirty revision, got %q", got)
	}
}
