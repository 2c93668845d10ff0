package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"termfolio/internal/data/embedded"
	"termfolio/internal/logger"
	"termfolio/internal/output"
	"termfolio/pkg/termtypes"
)

// ErrUnknownTheme is returned when switching to a theme that does not exist.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeService provides the color themes of the terminal and remembers the
// chosen one as a local flag.
type ThemeService struct {
	initialized bool
	mu          sync.RWMutex
	themes      map[string]*Theme
	names       []string
	current     string
	flags       *FlagStore
}

// Theme holds the lipgloss styles of each semantic element.
type Theme struct {
	Name        string
	Title       string
	Description string
	Text        lipgloss.Style
	Prompt      lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Info        lipgloss.Style
	Highlight   lipgloss.Style
	Muted       lipgloss.Style
}

// Output returns the style of transcript output of kind.
func (t *Theme) Output(kind termtypes.OutputKind) lipgloss.Style {
	switch kind {
	case termtypes.OutputSuccess:
		return t.Success
	case termtypes.OutputError:
		return t.Error
	default:
		return t.Info
	}
}

// NewThemeService creates a new ThemeService with the embedded themes loaded.
// flags may be nil, in which case the choice is not remembered.
func NewThemeService(flags *FlagStore) *ThemeService {
	service := &ThemeService{
		themes:  make(map[string]*Theme),
		current: embedded.DefaultTheme,
		flags:   flags,
	}
	service.loadThemesFromYAML()
	return service
}

// Name returns the service name "theme" for registration.
func (t *ThemeService) Name() string {
	return "theme"
}

// UseDefault selects name as the theme used when none is remembered.
// It does not persist the choice.
func (t *ThemeService) UseDefault(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	name = strings.ToLower(strings.TrimSpace(name))
	if _, exists := t.themes[name]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	t.current = name
	return nil
}

// Initialize selects the remembered theme, or the default one.
func (t *ThemeService) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.initialized = true
	if t.flags == nil {
		return nil
	}
	if stored, ok := t.flags.Get(FlagTheme); ok {
		if _, exists := t.themes[stored]; exists {
			t.current = stored
		} else {
			logger.Debug("Ignoring unknown stored theme", "theme", stored)
		}
	}
	return nil
}

func (t *ThemeService) loadThemesFromYAML() {
	for _, name := range embedded.ThemeNames {
		data, err := embedded.ThemeData(name)
		if err != nil {
			logger.Error("Failed to read theme", "theme", name, "error", err)
			continue
		}
		theme, err := t.loadThemeFile(data)
		if err != nil {
			logger.Error("Failed to load theme", "theme", name, "error", err)
			theme = plainTheme(name)
		}
		t.themes[name] = theme
		t.names = append(t.names, name)
	}

	if _, exists := t.themes[embedded.DefaultTheme]; !exists {
		t.themes[embedded.DefaultTheme] = plainTheme(embedded.DefaultTheme)
		t.names = append([]string{embedded.DefaultTheme}, t.names...)
	}
}

func (t *ThemeService) loadThemeFile(data []byte) (*Theme, error) {
	var themeFile termtypes.ThemeFile
	if err := yaml.Unmarshal(data, &themeFile); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return convertThemeConfig(&themeFile.ThemeConfig), nil
}

func convertThemeConfig(config *termtypes.ThemeConfig) *Theme {
	return &Theme{
		Name:        config.Name,
		Title:       config.Title,
		Description: config.Description,
		Text:        createStyle(config.Styles.Text),
		Prompt:      createStyle(config.Styles.Prompt),
		Success:     createStyle(config.Styles.Success),
		Error:       createStyle(config.Styles.Error),
		Info:        createStyle(config.Styles.Info),
		Highlight:   createStyle(config.Styles.Highlight),
		Muted:       createStyle(config.Styles.Muted),
	}
}

func createStyle(config termtypes.StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if config.Foreground != nil {
		if color := parseColor(config.Foreground); color != nil {
			style = style.Foreground(color)
		}
	}
	if config.Background != nil {
		if color := parseColor(config.Background); color != nil {
			style = style.Background(color)
		}
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}

	return style
}

// parseColor parses a color value that can be a string or a light/dark map.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

func plainTheme(name string) *Theme {
	return &Theme{
		Name:      name,
		Title:     strings.ToUpper(name[:1]) + name[1:],
		Text:      lipgloss.NewStyle(),
		Prompt:    lipgloss.NewStyle().Bold(true),
		Success:   lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Info:      lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().Reverse(true),
		Muted:     lipgloss.NewStyle().Faint(true),
	}
}

// ThemeNames returns the available theme names in display order.
func (t *ThemeService) ThemeNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.names...)
}

// CurrentTheme returns the name of the active theme.
func (t *ThemeService) CurrentTheme() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Current returns the active theme.
func (t *ThemeService) Current() *Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.themes[t.current]
}

// GetStyle returns the active theme's style for a semantic output type.
func (t *ThemeService) GetStyle(semantic string) output.TextStyle {
	theme := t.Current()
	if theme == nil {
		return lipgloss.NewStyle()
	}
	switch output.SemanticType(semantic) {
	case output.SemanticInfo:
		return theme.Info
	case output.SemanticSuccess:
		return theme.Success
	case output.SemanticError:
		return theme.Error
	case output.SemanticPrompt:
		return theme.Prompt
	case output.SemanticHighlight:
		return theme.Highlight
	case output.SemanticMuted:
		return theme.Muted
	default:
		return theme.Text
	}
}

// IsAvailable reports whether themed styles produce colored output.
func (t *ThemeService) IsAvailable() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.initialized && ColorEnabled()
}

// SwitchTheme activates name and remembers it. A failure to write the flag
// is logged and does not undo the switch.
func (t *ThemeService) SwitchTheme(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return ErrNotInitialized
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if _, exists := t.themes[name]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	t.current = name

	if t.flags != nil {
		if err := t.flags.Set(FlagTheme, name); err != nil {
			logger.Warn("Failed to remember theme", "theme", name, "error", err)
		}
	}
	logger.ServiceOperation("theme", "switch", name)
	return nil
}

// ColorEnabled reports whether styles produce colored output.
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// ConfigureColor disables colors when NO_COLOR is set or the output is not
// a terminal.
func ConfigureColor(isTerminal bool) {
	if termenv.EnvNoColor() || !isTerminal {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
