// Package version holds the termfolio build version. Values are injected at
// build time with -ldflags; each minor release line is named after a
// hardware terminal.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information set via -ldflags "-X termfolio/internal/version.Version=...".
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var releaseLines = map[string]string{
	"0.1": "ASR-33",
	"0.2": "VT52",
	"0.3": "VT100",
	"1.0": "VT220",
	"1.1": "VT320",
}

// Info describes the running build.
type Info struct {
	Version   string
	Codename  string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
	semver    *semver.Version
}

// Current parses the build version.
func Current() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return &Info{
		Version:   Version,
		Codename:  Codename(Version),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		semver:    sv,
	}, nil
}

// Codename returns the terminal a release line is named after, or "" for
// unnamed lines and invalid versions.
func Codename(version string) string {
	sv, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}
	return releaseLines[fmt.Sprintf("%d.%d", sv.Major(), sv.Minor())]
}

// Release returns major.minor.patch without prerelease or build metadata.
func (i *Info) Release() string {
	return fmt.Sprintf("%d.%d.%d", i.semver.Major(), i.semver.Minor(), i.semver.Patch())
}

// Prerelease reports whether the build carries a prerelease tag.
func (i *Info) Prerelease() bool {
	return i.semver.Prerelease() != ""
}

// Development reports whether the build lacks commit or date stamps.
func (i *Info) Development() bool {
	return i.GitCommit == "unknown" || i.BuildDate == "unknown"
}

// String renders the banner line, e.g. "termfolio v1.0.2 'VT220', commit 0123456".
func (i *Info) String() string {
	head := "termfolio v" + i.Version
	if i.Codename != "" {
		head += fmt.Sprintf(" '%s'", i.Codename)
	}
	parts := []string{head}
	if i.GitCommit != "unknown" && i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		parts = append(parts, "commit "+commit)
	}
	if i.BuildDate != "unknown" && i.BuildDate != "" {
		parts = append(parts, "built "+i.BuildDate)
	}
	return strings.Join(parts, ", ")
}

// Formatted returns the banner line of the running build.
func Formatted() string {
	info, err := Current()
	if err != nil {
		return fmt.Sprintf("termfolio v%s (invalid version)", Version)
	}
	return info.String()
}

// UserAgent identifies termfolio to the content API.
func UserAgent() string {
	info, err := Current()
	if err != nil {
		return "termfolio"
	}
	return "termfolio/" + info.Release()
}
