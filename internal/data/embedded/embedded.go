// Package embedded provides access to embedded theme files, static text files and sample content.
package embedded

import (
	"embed"
	"io/fs"
)

// ThemeNames lists the embedded themes in display order.
var ThemeNames = []string{"classic", "amber", "blue", "hacker", "synthwave", "light"}

// DefaultTheme is the theme used when no local flag is stored.
const DefaultTheme = "classic"

//go:embed themes/*.yaml
var themeFS embed.FS

//go:embed static/*.txt
var staticFS embed.FS

//go:embed all:content
var contentFS embed.FS

// ThemeData returns the raw YAML of the named embedded theme.
func ThemeData(name string) ([]byte, error) {
	return themeFS.ReadFile("themes/" + name + ".yaml")
}

// StaticFiles returns the plain text file templates keyed by file name.
func StaticFiles() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

// SampleContent returns the sample backend content tree
// (blog/, portfolio/ and resume.md at the root).
func SampleContent() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
