package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testCommands = []string{"help", "cd", "cat", "clear", "contact", "copy", "ls"}
	testEntries  = []string{"portfolio", "blog", "about.txt", "Readme"}
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"blank lists all but clear", "", []string{"help", "cd", "cat", "contact", "copy", "ls"}},
		{"whitespace counts as blank", "   ", []string{"help", "cd", "cat", "contact", "copy", "ls"}},
		{"typed prefix keeps clear", "c", []string{"cd", "cat", "clear", "contact", "copy"}},
		{"full name", "clear", []string{"clear"}},
		{"command prefix is case-sensitive", "C", nil},
		{"argument prefix", "cat a", []string{"about.txt"}},
		{"empty argument lists entries", "cd ", testEntries},
		{"argument prefix is case-sensitive", "cat r", nil},
		{"last token only", "grep foo b", []string{"blog"}},
		{"exec prefix", "./", []string{"./portfolio", "./blog", "./about.txt", "./Readme"}},
		{"exec prefix ignores case", "./rEA", []string{"./Readme"}},
		{"nothing matches", "zz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, testCommands, testEntries))
		})
	}
}

func TestComplete(t *testing.T) {
	t.Run("single command candidate", func(t *testing.T) {
		input, strip := Complete("he", Suggest("he", testCommands, testEntries))
		assert.Equal(t, "help ", input)
		assert.False(t, strip.Visible())
		assert.Equal(t, -1, strip.Selected)
	})

	t.Run("single argument candidate replaces last token", func(t *testing.T) {
		input, _ := Complete("cat ab", Suggest("cat ab", testCommands, testEntries))
		assert.Equal(t, "cat about.txt ", input)
	})

	t.Run("exec candidate replaces whole input", func(t *testing.T) {
		input, _ := Complete("./read", Suggest("./read", testCommands, testEntries))
		assert.Equal(t, "./Readme ", input)
	})

	t.Run("many candidates open the strip", func(t *testing.T) {
		input, strip := Complete("co", Suggest("co", testCommands, testEntries))
		assert.Equal(t, "co", input)
		assert.Equal(t, []string{"contact", "copy"}, strip.Candidates)
		assert.Equal(t, 0, strip.Selected)
		current, ok := strip.Current()
		assert.True(t, ok)
		assert.Equal(t, "contact", current)
	})

	t.Run("no candidates leave input unchanged", func(t *testing.T) {
		input, strip := Complete("xyz", nil)
		assert.Equal(t, "xyz", input)
		assert.False(t, strip.Visible())
	})
}

func TestToken(t *testing.T) {
	assert.Equal(t, "ca", Token("ca"))
	assert.Equal(t, "ab", Token("cat ab"))
	assert.Equal(t, "", Token("cat "))
	assert.Equal(t, "./x y", Token("./x y"))
}
