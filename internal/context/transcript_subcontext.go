package context

import (
	"sync"

	"termfolio/pkg/termtypes"
)

// TranscriptSubcontext is the append-only list of command/output pairs.
// Clear is the only way entries are removed.
type TranscriptSubcontext interface {
	Append(entry termtypes.TranscriptEntry) int
	Entries() []termtypes.TranscriptEntry
	Last() (termtypes.TranscriptEntry, bool)
	Len() int
	Clear()
}

type transcriptSubcontext struct {
	entries []termtypes.TranscriptEntry
	mu      sync.RWMutex
}

// NewTranscriptSubcontext creates an empty transcript.
func NewTranscriptSubcontext() TranscriptSubcontext {
	return &transcriptSubcontext{entries: make([]termtypes.TranscriptEntry, 0)}
}

// Append adds entry and returns its index.
func (t *transcriptSubcontext) Append(entry termtypes.TranscriptEntry) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
	return len(t.entries) - 1
}

func (t *transcriptSubcontext) Entries() []termtypes.TranscriptEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]termtypes.TranscriptEntry, len(t.entries))
	copy(result, t.entries)
	return result
}

func (t *transcriptSubcontext) Last() (termtypes.TranscriptEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.entries) == 0 {
		return termtypes.TranscriptEntry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

func (t *transcriptSubcontext) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *transcriptSubcontext) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make([]termtypes.TranscriptEntry, 0)
}
