package context

import "sync"

// HistorySubcontext is the append-only log of submitted command lines.
// It is independent of the transcript and survives clear.
type HistorySubcontext interface {
	Push(line string)
	Lines() []string
	Len() int
}

type historySubcontext struct {
	lines []string
	mu    sync.RWMutex
}

// NewHistorySubcontext creates an empty command history log.
func NewHistorySubcontext() HistorySubcontext {
	return &historySubcontext{lines: make([]string, 0)}
}

func (h *historySubcontext) Push(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, line)
}

func (h *historySubcontext) Lines() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result := make([]string, len(h.lines))
	copy(result, h.lines)
	return result
}

func (h *historySubcontext) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.lines)
}
