package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodename(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "release line", version: "1.0.0", expected: "VT220"},
		{name: "patch", version: "1.0.7", expected: "VT220"},
		{name: "prerelease", version: "0.3.0-rc.1", expected: "VT100"},
		{name: "unnamed line", version: "4.2.0", expected: ""},
		{name: "invalid", version: "not-a-version", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Codename(tt.version))
		})
	}
}

func withBuild(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestFormatted(t *testing.T) {
	withBuild(t, "1.0.2", "0123456789abcdef", "2026-10-01")
	assert.Equal(t, "termfolio v1.0.2 'VT220', commit 0123456, built 2026-10-01", Formatted())

	withBuild(t, "9.9.9", "unknown", "unknown")
	assert.Equal(t, "termfolio v9.9.9", Formatted())

	withBuild(t, "banana", "abc", "today")
	assert.Equal(t, "termfolio vbanana (invalid version)", Formatted())
}

func TestCurrent(t *testing.T) {
	withBuild(t, "1.1.0-beta.2+build.5", "abc", "unknown")

	info, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "VT320", info.Codename)
	assert.Equal(t, "1.1.0", info.Release())
	assert.True(t, info.Prerelease())
	assert.True(t, info.Development())

	withBuild(t, "banana", "abc", "today")
	_, err = Current()
	assert.Error(t, err)
}

func TestUserAgent(t *testing.T) {
	withBuild(t, "1.1.3-rc.1", "abc", "today")
	assert.Equal(t, "termfolio/1.1.3", UserAgent())

	withBuild(t, "banana", "abc", "today")
	assert.Equal(t, "termfolio", UserAgent())
}
