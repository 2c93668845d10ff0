// Package completion implements command and filename suggestions for the
// terminal input line and the Tab key behavior built on them.
package completion

import (
	"strings"
)

// ExecPrefix is the literal that marks a local executable invocation.
const ExecPrefix = "./"

// hiddenOnBlank is left out of the suggestions for blank input only.
const hiddenOnBlank = "clear"

// Strip is the visible list of suggestions and the selected index.
// Selected is -1 when nothing is selected.
type Strip struct {
	Candidates []string
	Selected   int
}

// EmptyStrip returns a strip with no candidates.
func EmptyStrip() Strip {
	return Strip{Selected: -1}
}

// Visible reports whether the strip has candidates to show.
func (s Strip) Visible() bool {
	return len(s.Candidates) > 0
}

// Current returns the selected candidate.
func (s Strip) Current() (string, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Candidates) {
		return "", false
	}
	return s.Candidates[s.Selected], true
}

// Suggest returns the ordered candidates for input.
//
// Blank input lists every command except clear. Input starting with "./"
// lists entries of the current directory matching the rest case-insensitively,
// each prefixed with "./". A single token lists command names starting with
// it. With more tokens, directory entries starting with the last token are
// listed. Both prefix matches are case-sensitive.
func Suggest(input string, commandNames, entries []string) []string {
	if strings.TrimSpace(input) == "" {
		result := make([]string, 0, len(commandNames))
		for _, name := range commandNames {
			if name != hiddenOnBlank {
				result = append(result, name)
			}
		}
		return result
	}

	if partial, ok := strings.CutPrefix(input, ExecPrefix); ok {
		needle := strings.ToLower(partial)
		var result []string
		for _, entry := range entries {
			if strings.HasPrefix(strings.ToLower(entry), needle) {
				result = append(result, ExecPrefix+entry)
			}
		}
		return result
	}

	parts := strings.Split(input, " ")
	if len(parts) == 1 {
		return filterPrefix(commandNames, parts[0])
	}
	return filterPrefix(entries, parts[len(parts)-1])
}

func filterPrefix(items []string, prefix string) []string {
	var result []string
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			result = append(result, item)
		}
	}
	return result
}

// Complete applies Tab to input given its candidates. A single candidate
// replaces the token being completed and appends one space; for "./" input
// and single tokens that is the whole input. Several candidates are returned
// as a strip with the first selected. No candidates leave input unchanged.
func Complete(input string, candidates []string) (string, Strip) {
	switch len(candidates) {
	case 0:
		return input, EmptyStrip()
	case 1:
		return Replace(input, candidates[0]), EmptyStrip()
	default:
		return input, Strip{Candidates: append([]string(nil), candidates...), Selected: 0}
	}
}

// Replace substitutes candidate for the token being completed in input and
// appends a trailing space.
func Replace(input, candidate string) string {
	parts := strings.Split(input, " ")
	if strings.HasPrefix(input, ExecPrefix) || len(parts) == 1 {
		return candidate + " "
	}
	parts[len(parts)-1] = candidate
	return strings.Join(parts, " ") + " "
}

// Token returns the part of input a candidate would replace.
func Token(input string) string {
	if strings.HasPrefix(input, ExecPrefix) {
		return input
	}
	parts := strings.Split(input, " ")
	return parts[len(parts)-1]
}
