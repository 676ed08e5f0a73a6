// Package version reports the build version of the kit, for services
// that expose it in health endpoints and startup logs.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/imbi-platform/imbikit/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version is the semantic version of the build, "dev" when not set.
var Version = "dev"

// Info describes the running build.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date"`
	IsDirty   bool      `json:"is_dirty"`
	IsRelease bool      `json:"is_release"`
}

// Get returns version information, filling commit and build date from
// the embedded VCS metadata when available.
func Get() Info {
	info := Info{
		Version:   Version,
		IsRelease: Version != "dev",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
			if len(info.GitCommit) > 7 {
				info.GitCommit = info.GitCommit[:7]
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				info.BuildDate = t
			}
		}
	}
	return info
}

// String renders the version the way startup logs print it, e.g.
// "1.2.0-abc1234" or "dev-abc1234-dirty".
func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s = fmt.Sprintf("%s-%s", s, i.GitCommit)
	}
	if i.IsDirty {
		s += "-dirty"
	}
	return s
}
