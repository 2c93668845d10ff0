// Package termtypes defines theme-related data structures for the terminal renderer.
// This file contains the core types for representing and loading terminal color schemes.
package termtypes

// ThemeConfig represents a theme configuration loaded from YAML.
// It defines the color and style settings for each semantic element of the terminal.
type ThemeConfig struct {
	// Name is the theme identifier (e.g., "classic", "amber", "synthwave")
	Name string `yaml:"name" json:"name"`

	// Title is the human-readable theme name shown by the theme command
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Description provides a brief description of the theme
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Styles contains the color and style definitions for different semantic elements
	Styles ThemeStyles `yaml:"styles" json:"styles"`
}

// ThemeStyles defines the styling configuration for different semantic elements.
type ThemeStyles struct {
	// Text style for ordinary terminal text and the input line
	Text StyleConfig `yaml:"text" json:"text"`

	// Prompt style for the user@host:path$ prompt
	Prompt StyleConfig `yaml:"prompt" json:"prompt"`

	// Success style for success-kind transcript output
	Success StyleConfig `yaml:"success" json:"success"`

	// Error style for error-kind transcript output
	Error StyleConfig `yaml:"error" json:"error"`

	// Info style for info-kind transcript output
	Info StyleConfig `yaml:"info" json:"info"`

	// Highlight style for the selected autocomplete candidate
	Highlight StyleConfig `yaml:"highlight" json:"highlight"`

	// Muted style for unselected candidates and hints
	Muted StyleConfig `yaml:"muted" json:"muted"`
}

// StyleConfig defines the visual styling for a semantic element.
// It supports both simple color specifications and adaptive colors for light/dark terminals.
type StyleConfig struct {
	// Foreground color - can be hex color, named color, or adaptive color object
	Foreground interface{} `yaml:"foreground,omitempty" json:"foreground,omitempty"`

	// Background color - can be hex color, named color, or adaptive color object
	Background interface{} `yaml:"background,omitempty" json:"background,omitempty"`

	// Bold text decoration
	Bold *bool `yaml:"bold,omitempty" json:"bold,omitempty"`

	// Italic text decoration
	Italic *bool `yaml:"italic,omitempty" json:"italic,omitempty"`

	// Underline text decoration
	Underline *bool `yaml:"underline,omitempty" json:"underline,omitempty"`
}

// ThemeFile represents a complete theme file loaded from YAML.
type ThemeFile struct {
	ThemeConfig `yaml:",inline" json:",inline"`
}
