package context

import "sync"

// Secret is a discoverable easter egg.
type Secret struct {
	Key   string
	Title string
}

// Secrets is the catalogue of discoverable easter eggs.
var Secrets = []Secret{
	{Key: "konami_code", Title: "🎮 Konami Code Master"},
	{Key: "automotive_enthusiast", Title: "🏎️ Automotive Enthusiast"},
	{Key: "gearhead", Title: "🔧 Gearhead"},
	{Key: "mechanic", Title: "🛠️ Mechanic"},
	{Key: "vtec_kicked_in", Title: "⚡ VTEC Activated"},
	{Key: "gm_employee", Title: "🏭 GM Insider"},
	{Key: "hacker", Title: "💻 Hacker (Nice Try)"},
	{Key: "tried_sudo", Title: "🔒 Sudo Attempt"},
	{Key: "coffee_break", Title: "☕ Coffee Lover"},
}

// SecretTitle returns the display title of key, or key itself when unknown.
func SecretTitle(key string) string {
	for _, s := range Secrets {
		if s.Key == key {
			return s.Title
		}
	}
	return key
}

// SecretsSubcontext records discovered secrets in discovery order.
type SecretsSubcontext interface {
	// Unlock records key and reports whether it was newly discovered.
	Unlock(key string) bool
	IsUnlocked(key string) bool
	Unlocked() []string
	Count() int
}

type secretsSubcontext struct {
	order    []string
	unlocked map[string]bool
	mu       sync.RWMutex
}

// NewSecretsSubcontext creates an empty secrets record.
func NewSecretsSubcontext() SecretsSubcontext {
	return &secretsSubcontext{unlocked: make(map[string]bool)}
}

func (s *secretsSubcontext) Unlock(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unlocked[key] {
		return false
	}
	s.unlocked[key] = true
	s.order = append(s.order, key)
	return true
}

func (s *secretsSubcontext) IsUnlocked(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked[key]
}

func (s *secretsSubcontext) Unlocked() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

func (s *secretsSubcontext) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
