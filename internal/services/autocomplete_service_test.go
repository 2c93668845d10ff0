package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSource() ([]string, []string) {
	return []string{"help", "cat", "cd", "clear"}, []string{"blog", "about.txt", "Intro"}
}

func suffixes(lines [][]rune) []string {
	result := make([]string, 0, len(lines))
	for _, l := range lines {
		result = append(result, string(l))
	}
	return result
}

func TestAutoCompleteService_Do(t *testing.T) {
	service := NewAutoCompleteService(testSource)
	assert.Equal(t, "autocomplete", service.Name())

	lines, offset := service.Do([]rune("he"), 2)
	assert.Nil(t, lines, "not initialized")
	assert.Equal(t, 0, offset)

	_ = service.Initialize()

	tests := []struct {
		name     string
		line     string
		pos      int
		expected []string
		offset   int
	}{
		{"single command gets a space", "he", 2, []string{"lp "}, 2},
		{"several commands", "c", 1, []string{"at", "d", "lear"}, 1},
		{"blank hides clear", "", 0, []string{"help", "cat", "cd"}, 0},
		{"argument", "cat ab", 6, []string{"out.txt "}, 2},
		{"cursor in the middle", "cat ab", 2, []string{"t "}, 2},
		{"exec prefix ignores case", "./in", 4, []string{"tro "}, 4},
		{"no match", "zz", 2, []string{}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, offset := service.Do([]rune(tt.line), tt.pos)
			assert.Equal(t, tt.expected, suffixes(lines))
			assert.Equal(t, tt.offset, offset)
		})
	}
}
