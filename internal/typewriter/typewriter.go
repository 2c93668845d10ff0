// Package typewriter reveals command output one character at a time.
//
// A Typewriter is a small state machine driven by ticks. In the full-screen
// terminal each tick is a bubbletea command; in plain mode Play drives the
// same machine with a timer. Neither is safe for concurrent use.
package typewriter

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Speed is the reveal speed setting.
type Speed string

// Reveal speeds.
const (
	SpeedInstant Speed = "instant"
	SpeedFast    Speed = "fast"
	SpeedMedium  Speed = "medium"
	SpeedSlow    Speed = "slow"
)

// MaxAnimatedLength is the length from which output is shown without animation.
const MaxAnimatedLength = 5000

// ParseSpeed converts a configuration value to a Speed.
func ParseSpeed(s string) (Speed, error) {
	switch speed := Speed(strings.ToLower(strings.TrimSpace(s))); speed {
	case SpeedInstant, SpeedFast, SpeedMedium, SpeedSlow:
		return speed, nil
	default:
		return "", fmt.Errorf("unknown typing speed %q", s)
	}
}

// Delay returns the per-character delay of s.
func (s Speed) Delay() time.Duration {
	switch s {
	case SpeedFast:
		return 10 * time.Millisecond
	case SpeedMedium:
		return 30 * time.Millisecond
	case SpeedSlow:
		return 60 * time.Millisecond
	default:
		return 0
	}
}

// Effective returns the speed to use, forcing instant in turbo mode.
func Effective(s Speed, turbo bool) Speed {
	if turbo {
		return SpeedInstant
	}
	return s
}

// Animated reports whether text is short enough to be animated.
func Animated(text string) bool {
	return len([]rune(text)) < MaxAnimatedLength
}

// TickMsg asks the typewriter of generation Gen to reveal the next character.
type TickMsg struct {
	Gen int
}

// DoneMsg reports that generation Gen has been fully revealed.
type DoneMsg struct {
	Gen int
}

// Typewriter holds the reveal state of one text.
type Typewriter struct {
	runes  []rune
	shown  int
	gen    int
	speed  Speed
	typing bool
}

// New returns an idle typewriter.
func New() *Typewriter {
	return &Typewriter{speed: SpeedInstant}
}

// Start begins revealing text, abandoning any reveal in flight. Escape
// sequences are removed first. When enabled is false, speed is instant or
// the text is too long to animate, the whole text is shown at once and done
// is true.
func (t *Typewriter) Start(text string, speed Speed, enabled bool) (gen int, done bool) {
	t.gen++
	t.runes = []rune(ansi.Strip(text))
	t.speed = speed

	if !enabled || speed.Delay() == 0 || !Animated(text) || len(t.runes) == 0 {
		t.shown = len(t.runes)
		t.typing = false
		return t.gen, true
	}

	t.shown = 0
	t.typing = true
	return t.gen, false
}

// Tick reveals one more character of generation gen. Ticks of an older
// generation, or after completion, do nothing. It reports whether the reveal
// is complete after this tick.
func (t *Typewriter) Tick(gen int) bool {
	if gen != t.gen || !t.typing {
		return !t.typing
	}
	if t.shown < len(t.runes) {
		t.shown++
	}
	if t.shown >= len(t.runes) {
		t.typing = false
	}
	return !t.typing
}

// Skip reveals the remainder at once. It reports whether a reveal was in flight.
func (t *Typewriter) Skip() bool {
	if !t.typing {
		return false
	}
	t.shown = len(t.runes)
	t.typing = false
	return true
}

// Typing reports whether a reveal is in flight.
func (t *Typewriter) Typing() bool {
	return t.typing
}

// Generation returns the generation of the current text.
func (t *Typewriter) Generation() int {
	return t.gen
}

// Visible returns the revealed part of the current text.
func (t *Typewriter) Visible() string {
	return string(t.runes[:t.shown])
}

// Cmd schedules the next tick of the current generation.
func (t *Typewriter) Cmd() tea.Cmd {
	if !t.typing {
		return nil
	}
	gen := t.gen
	return tea.Tick(t.speed.Delay(), func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// Update handles a TickMsg, returning the next tick or a DoneMsg command.
// Messages of other types and stale generations yield nil.
func (t *Typewriter) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.Gen != t.gen || !t.typing {
		return nil
	}
	if t.Tick(tick.Gen) {
		gen := t.gen
		return func() tea.Msg { return DoneMsg{Gen: gen} }
	}
	return t.Cmd()
}

// Play writes text to w at speed, one character per tick. Cancelling ctx
// skips to the end: the remainder is written and ctx.Err() is returned.
func Play(ctx context.Context, w io.Writer, text string, speed Speed) error {
	t := New()
	if _, done := t.Start(text, speed, true); done {
		_, err := io.WriteString(w, t.Visible())
		return err
	}

	ticker := time.NewTicker(speed.Delay())
	defer ticker.Stop()

	written := 0
	for {
		select {
		case <-ctx.Done():
			t.Skip()
			if _, err := io.WriteString(w, string(t.runes[written:])); err != nil {
				return err
			}
			return ctx.Err()
		case <-ticker.C:
			done := t.Tick(t.gen)
			if _, err := io.WriteString(w, string(t.runes[written:t.shown])); err != nil {
				return err
			}
			written = t.shown
			if done {
				return nil
			}
		}
	}
}
