package version

import (
	"strings"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("version = %q, want dev", info.Version)
	}
	if info.IsRelease {
		t.Error("dev build should not be a release")
	}
}

func TestGetRelease(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "1.2.0"

	info := Get()
	if !info.IsRelease {
		t.Error("1.2.0 should be a release")
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "1.2.0"}, "1.2.0"},
		{"with commit", Info{Version: "1.2.0", GitCommit: "abc1234"}, "1.2.0-abc1234"},
		{"dirty", Info{Version: "dev", GitCommit: "abc1234", IsDirty: true}, "dev-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetTruncatesCommit(t *testing.T) {
	info := Get()
	if len(info.GitCommit) > 7 {
		t.Errorf("commit should be truncated to 7 chars, got %q", info.GitCommit)
	}
	if info.GoVersion != "" && !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("unexpected go version %q", info.GoVersion)
	}
}
