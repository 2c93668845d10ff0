package services

import (
	"strings"

	"termfolio/internal/completion"
)

// CompletionSource returns the command names and the entry names of the
// current directory at the time of a completion request.
type CompletionSource func() (commandNames []string, entries []string)

// AutoCompleteService exposes the completion engine to the plain shell.
// It implements the readline.AutoCompleter interface to integrate with ishell.
type AutoCompleteService struct {
	initialized bool
	source      CompletionSource
}

// NewAutoCompleteService creates a new AutoCompleteService reading candidates from source.
func NewAutoCompleteService(source CompletionSource) *AutoCompleteService {
	return &AutoCompleteService{source: source}
}

// Name returns the service name "autocomplete" for registration.
func (a *AutoCompleteService) Name() string {
	return "autocomplete"
}

// Initialize sets up the AutoCompleteService for operation.
func (a *AutoCompleteService) Initialize() error {
	a.initialized = true
	return nil
}

// Do implements the readline.AutoCompleter interface. Candidates are
// returned as the suffixes that complete the token before the cursor;
// offset is the length of that token.
func (a *AutoCompleteService) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if !a.initialized || a.source == nil {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	input := string(line[:pos])
	commandNames, entries := a.source()
	candidates := completion.Suggest(input, commandNames, entries)

	token := []rune(completion.Token(input))
	var suggestions [][]rune
	for _, candidate := range candidates {
		runes := []rune(candidate)
		if len(runes) < len(token) || !strings.EqualFold(string(runes[:len(token)]), string(token)) {
			continue
		}
		suffix := runes[len(token):]
		if len(candidates) == 1 {
			suffix = append(suffix, ' ')
		}
		suggestions = append(suggestions, suffix)
	}

	return suggestions, len(token)
}
