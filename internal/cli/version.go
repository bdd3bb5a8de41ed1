package cli

import (
	"runtime/debug"
	"strings"
)

const (
	devVersion         = "dev"
	goDevelMainVersion = "(devel)"
)

var readBuildInfo = debug.ReadBuildInfo

// resolvedVersion prefers an explicit build-time version and falls back
// to module build info, then the VCS revision.
func resolvedVersion(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && trimmed != devVersion {
		return trimmed
	}

	if info, ok := readBuildInfo(); ok && info != nil {
		mainVersion := strings.TrimSpace(info.Main.Version)
		if mainVersion != "" && mainVersion != goDevelMainVersion {
			return mainVersion
		}
		if revision, dirty := buildRevision(info.Settings); revision != "" {
			if dirty {
				return revision + "-dirty"
			}
			return revision
		}
	}

	if trimmed != "" {
		return trimmed
	}
	return devVersion
}

func buildRevision(settings []debug.BuildSetting) (string, bool) {
	var revision string
	dirty := false
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = strings.TrimSpace(setting.Value)
		case "vcs.modified":
			dirty = strings.EqualFold(strings.TrimSpace(setting.Value), "true")
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return revision, dirty
}
