package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func setVars(t *testing.T, v, c, d string) {
	t.Helper()
	old := [3]string{Version, Commit, Date}
	Version, Commit, Date = v, c, d
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })
}

func TestFillFromBuildInfo(t *testing.T) {
	setVars(t, "dev", "none", "unknown")

	fill(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2021-07-09T12:00:00Z"},
		},
	})
	if Version != "v0.3.1" || Commit != "abc123" || Date != "2021-07-09T12:00:00Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}
}

func TestFillKeepsLdflags(t *testing.T) {
	setVars(t, "v1.0.0", "deadbeef", "2024-01-01")

	fill(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	if Version != "v1.0.0" || Commit != "deadbeef" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}

func TestTemplate(t *testing.T) {
	setVars(t, "v2.0.0", "c0ffee", "today")
	if got := Template(); !strings.Contains(got, "version v2.0.0") || !strings.Contains(got, "commit: c0ffee") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); !strings.HasPrefix(got, "version: v2.0.0") {
		t.Errorf("String() = %q", got)
	}
}
