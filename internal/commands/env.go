package commands

import (
	"time"

	"termfolio/internal/config"
	tcontext "termfolio/internal/context"
	"termfolio/internal/filesystem"
	"termfolio/pkg/termtypes"
)

// Features toggles the optional command groups.
type Features struct {
	Secrets bool
	Themes  bool
	Content bool
}

// EnhancedFeatures enables every optional group.
func EnhancedFeatures() Features {
	return Features{Secrets: true, Themes: true, Content: true}
}

// BasicFeatures disables every optional group.
func BasicFeatures() Features {
	return Features{}
}

// FeaturesFor maps a terminal profile name to its feature set.
func FeaturesFor(profile string) Features {
	if profile == config.ProfileBasic {
		return BasicFeatures()
	}
	return EnhancedFeatures()
}

// ThemeSwitcher lists and switches terminal themes.
type ThemeSwitcher interface {
	ThemeNames() []string
	CurrentTheme() string
	SwitchTheme(name string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// FormStarter starts the interactive contact form and returns its first prompt.
type FormStarter interface {
	Start() string
}

// Env is everything a command handler may read or mutate. The registry
// builder receives it explicitly on every dispatch.
type Env struct {
	Session  *tcontext.TerminalContext
	FS       *filesystem.FileSystem
	API      termtypes.ContentAPI
	Features Features

	Owner    config.Owner
	Hostname string

	// StaticFiles maps plain file names to their rendered contents.
	StaticFiles map[string]string

	Themes    ThemeSwitcher
	Clipboard Clipboard
	Form      FormStarter

	// Now returns the current time; nil means time.Now.
	Now func() time.Time
}

// Clock returns e.Now or time.Now.
func (e *Env) Clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
