package testutils

import (
	"termfolio/internal/commands"
	"termfolio/internal/config"
	tcontext "termfolio/internal/context"
	"termfolio/internal/filesystem"
)

// TestOwner is the portfolio owner used by tests.
var TestOwner = config.Owner{
	Name:     "Test Owner",
	Title:    "Engineer",
	Email:    "owner@example.com",
	LinkedIn: "https://linkedin.example/owner",
	GitHub:   "https://github.example/owner",
}

// TestStaticFiles are the plain file contents used by tests.
var TestStaticFiles = map[string]string{
	"about.txt":   "About Test Owner",
	"contact.txt": "Contact Test Owner",
	"resume.txt":  "Static resume",
}

// NewEnv returns an enhanced command environment over a default tree,
// a fresh session in test mode, api and a fixed clock.
func NewEnv(api *FakeContentAPI) *commands.Env {
	session := tcontext.New()
	session.SetTestMode(true)
	env := &commands.Env{
		Session:     session,
		FS:          filesystem.NewDefault(),
		Features:    commands.EnhancedFeatures(),
		Owner:       TestOwner,
		Hostname:    "portfolio.test",
		StaticFiles: TestStaticFiles,
		Now:         FixedClock,
	}
	if api != nil {
		env.API = api
	}
	return env
}

// FakeClipboard records written text.
type FakeClipboard struct {
	Text string
	Err  error
}

// Write implements commands.Clipboard.
func (c *FakeClipboard) Write(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	return nil
}

// FakeThemes is an in-memory commands.ThemeSwitcher.
type FakeThemes struct {
	Names   []string
	Current string
}

// ThemeNames implements commands.ThemeSwitcher.
func (t *FakeThemes) ThemeNames() []string { return t.Names }

// CurrentTheme implements commands.ThemeSwitcher.
func (t *FakeThemes) CurrentTheme() string { return t.Current }

// SwitchTheme implements commands.ThemeSwitcher.
func (t *FakeThemes) SwitchTheme(name string) error {
	for _, n := range t.Names {
		if n == name {
			t.Current = name
			return nil
		}
	}
	return &UnknownThemeError{Name: name}
}

// UnknownThemeError is returned by FakeThemes for unknown names.
type UnknownThemeError struct{ Name string }

func (e *UnknownThemeError) Error() string { return "unknown theme " + e.Name }
