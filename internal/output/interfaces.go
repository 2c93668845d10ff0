// Package output writes terminal output to line-oriented streams.
// Styling comes from an optional StyleProvider; without one, output is
// plain text typed out one character at a time.
package output

import "termfolio/pkg/termtypes"

// StyleProvider is the interface that styling services (like ThemeService) implement
// to provide styled text rendering capabilities.
// The output package depends only on this interface, not on concrete services.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the style provider is ready to provide styles.
	// This allows the output system to gracefully fall back to plain text.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// This interface is implemented by lipgloss.Style or other styling systems.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode selects how entries are written.
type Mode int

const (
	// ModeAuto styles output whenever the style provider is available and
	// types it out otherwise.
	ModeAuto Mode = iota

	// ModePlain types out unstyled text.
	ModePlain

	// ModeBatch writes unstyled text at once, for scripts and pipes.
	ModeBatch
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeBatch:
		return "batch"
	default:
		return "auto"
	}
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticText is banner and body text.
	SemanticText SemanticType = "text"
	// SemanticInfo is the default output kind.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess is directory change output.
	SemanticSuccess SemanticType = "success"
	// SemanticError is not-found, usage and fault output.
	SemanticError SemanticType = "error"
	// SemanticPrompt is the prompt and echoed command line.
	SemanticPrompt SemanticType = "prompt"
	// SemanticHighlight is the selected suggestion.
	SemanticHighlight SemanticType = "highlight"
	// SemanticMuted is secondary text.
	SemanticMuted SemanticType = "muted"
)

// SemanticFor maps a transcript output kind to its semantic type.
func SemanticFor(kind termtypes.OutputKind) SemanticType {
	switch kind {
	case termtypes.OutputSuccess:
		return SemanticSuccess
	case termtypes.OutputError:
		return SemanticError
	default:
		return SemanticInfo
	}
}
