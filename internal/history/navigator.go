// Package history implements arrow-key recall over the command history log
// and selection movement within a visible suggestion strip.
package history

import "termfolio/internal/completion"

// none is the cursor value when no history entry is recalled.
const none = -1

// Navigator holds the transient recall cursor. The zero value is not ready
// for use; call New.
type Navigator struct {
	cursor int
}

// New returns a navigator with no entry recalled.
func New() *Navigator {
	return &Navigator{cursor: none}
}

// Cursor returns the index of the recalled entry, or -1.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Reset forgets the recalled entry. Any key other than the arrows calls it.
func (n *Navigator) Reset() {
	n.cursor = none
}

// Up moves toward older entries. With a visible strip only the selection
// moves, clamped at the first candidate. From no recall it jumps to the
// newest entry and clamps at the oldest. An empty log leaves input as is.
func (n *Navigator) Up(strip completion.Strip, log []string, input string) (string, completion.Strip) {
	if strip.Visible() {
		strip.Selected = max(0, strip.Selected-1)
		return input, strip
	}
	if len(log) == 0 {
		return input, strip
	}
	if n.cursor == none || n.cursor >= len(log) {
		n.cursor = len(log) - 1
	} else {
		n.cursor = max(0, n.cursor-1)
	}
	return log[n.cursor], strip
}

// Down moves toward newer entries. With a visible strip only the selection
// moves, clamped at the last candidate. Moving past the newest entry ends
// the recall and empties the input.
func (n *Navigator) Down(strip completion.Strip, log []string, input string) (string, completion.Strip) {
	if strip.Visible() {
		strip.Selected = min(len(strip.Candidates)-1, strip.Selected+1)
		return input, strip
	}
	if n.cursor == none {
		return input, strip
	}
	next := n.cursor + 1
	if next >= len(log) {
		n.cursor = none
		return "", strip
	}
	n.cursor = next
	return log[n.cursor], strip
}
