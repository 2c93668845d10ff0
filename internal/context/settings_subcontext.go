package context

import "sync"

// SettingsSubcontext holds per-session display settings.
type SettingsSubcontext interface {
	Turbo() bool
	SetTurbo(enabled bool)
	ToggleTurbo() bool
	Theme() string
	SetTheme(name string)
}

type settingsSubcontext struct {
	turbo bool
	theme string
	mu    sync.RWMutex
}

// NewSettingsSubcontext creates default settings: turbo off, no theme override.
func NewSettingsSubcontext() SettingsSubcontext {
	return &settingsSubcontext{}
}

func (s *settingsSubcontext) Turbo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.turbo
}

func (s *settingsSubcontext) SetTurbo(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turbo = enabled
}

// ToggleTurbo flips turbo mode and returns the new value.
func (s *settingsSubcontext) ToggleTurbo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turbo = !s.turbo
	return s.turbo
}

func (s *settingsSubcontext) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *settingsSubcontext) SetTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = name
}
