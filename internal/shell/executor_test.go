package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/commands"
	"termfolio/internal/services"
	"termfolio/internal/testutils"
	"termfolio/pkg/termtypes"
)

func newTestExecutor(t *testing.T) (*Executor, *testutils.FakeContentAPI, *services.ContactFormService) {
	t.Helper()
	api := testutils.NewFakeContentAPI()
	env := testutils.NewEnv(api)
	form := services.NewContactFormService(api, testutils.TestOwner.Email)
	require.NoError(t, form.Initialize())
	env.Form = form
	return NewExecutor(env, form), api, form
}

func entries(e *Executor) []termtypes.TranscriptEntry {
	return e.Env().Session.Transcript().Entries()
}

func history(e *Executor) []string {
	return e.Env().Session.History().Lines()
}

func TestBeginIgnoresBlankInput(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	for _, line := range []string{"", "   ", "\t"} {
		job := e.Begin(line)
		assert.True(t, job.Ignored)
		assert.False(t, job.Async())
	}
	assert.Empty(t, entries(e))
	assert.Empty(t, history(e))
}

func TestBeginUnknownCommand(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	job := e.Begin("  FooBar  baz ")
	require.NotNil(t, job.Immediate)
	assert.False(t, job.Async())

	require.Len(t, entries(e), 1)
	assert.Equal(t, termtypes.TranscriptEntry{
		Command: "FooBar  baz",
		Output:  "Command not found: FooBar. Type 'help' for available commands.",
		Kind:    termtypes.OutputError,
	}, entries(e)[0])
	assert.Equal(t, []string{"FooBar  baz"}, history(e))
}

func TestBeginTokenizesArguments(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	e.Begin("ECHO   hello    world")
	require.Len(t, entries(e), 1)
	assert.Equal(t, "hello world", entries(e)[0].Output)
	assert.Equal(t, termtypes.OutputInfo, entries(e)[0].Kind)
}

func TestBeginChangeDirectoryIsSuccess(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	e.Begin("cd blog")
	require.Len(t, entries(e), 1)
	assert.Equal(t, termtypes.OutputSuccess, entries(e)[0].Kind)
	assert.Equal(t, "Changed directory to /home/visitor/blog", entries(e)[0].Output)
	assert.Equal(t, "/home/visitor/blog", e.Env().Session.Navigation().CurrentPath())
}

func TestClearKeepsHistory(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	e.Begin("pwd")
	e.Begin("whoami")
	job := e.Begin("clear")
	require.NotNil(t, job.Immediate)
	assert.True(t, job.Immediate.Output.Silent)

	assert.Empty(t, entries(e))
	assert.Equal(t, []string{"pwd", "whoami"}, history(e))

	e.Begin("history")
	require.Len(t, entries(e), 1)
	assert.Equal(t, "  1  pwd\n  2  whoami", entries(e)[0].Output)
}

func TestAsyncCommandRecordsOnFinish(t *testing.T) {
	e, api, _ := newTestExecutor(t)

	job := e.Begin("blog")
	require.True(t, job.Async())
	assert.False(t, job.ClearInput)
	assert.Nil(t, job.Immediate)
	assert.Empty(t, entries(e))
	assert.Empty(t, history(e))

	result := job.Await(context.Background())
	e.Finish(result)

	require.Len(t, entries(e), 1)
	assert.Contains(t, entries(e)[0].Output, "BLOG POSTS (2)")
	assert.Equal(t, []string{"blog"}, history(e))
	assert.Equal(t, 1, api.Calls("BlogList"))
}

func TestAsyncResultsAppendInArrivalOrder(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	first := e.Begin("blog")
	second := e.Begin("portfolio")

	e.Finish(second.Await(context.Background()))
	e.Finish(first.Await(context.Background()))

	require.Len(t, entries(e), 2)
	assert.Equal(t, "portfolio", entries(e)[0].Command)
	assert.Equal(t, "blog", entries(e)[1].Command)
	assert.Equal(t, []string{"portfolio", "blog"}, history(e))
}

func TestExecutableRun(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	e.MergeDirectory("blog", []string{"hello-world.md", "go-tips.md"})
	e.Begin("cd blog")

	job := e.Begin("./Hello-World")
	require.True(t, job.Async())
	assert.True(t, job.ClearInput)

	result := job.Await(context.Background())
	assert.Equal(t, "./Hello-World", result.Command)
	assert.Equal(t, "Hello, World\n\nFirst post.", result.Output.Text)
	e.Finish(result)
	assert.Equal(t, []string{"cd blog", "./Hello-World"}, history(e))

	missing := e.Begin("./nope").Await(context.Background())
	assert.Equal(t, commands.Fail("./nope: No such file or directory"), missing.Output)
}

func TestInvokeConvertsFaults(t *testing.T) {
	panicking := &commands.Spec{Name: "boom", Handler: commands.Sync(func(string) (commands.Output, error) {
		panic("kaboom")
	})}
	failing := &commands.Spec{Name: "fail", Handler: commands.Async(func(context.Context, string) (commands.Output, error) {
		return commands.Output{}, errors.New("backend exploded")
	})}

	assert.Equal(t, commands.Fail("Error executing boom: kaboom"), invoke(context.Background(), panicking, ""))
	assert.Equal(t, commands.Fail("Error executing fail: backend exploded"), invoke(context.Background(), failing, ""))
}

func TestContactFormRouting(t *testing.T) {
	e, api, form := newTestExecutor(t)

	e.Begin("mail")
	require.True(t, e.FormActive())
	assert.Contains(t, entries(e)[0].Output, services.PromptName)

	e.Begin("   ")
	assert.Equal(t, services.ErrEmptyName, entries(e)[1].Output)
	assert.Equal(t, termtypes.OutputError, entries(e)[1].Kind)

	e.Begin("Ada Lovelace")
	assert.Equal(t, services.PromptEmail, entries(e)[2].Output)
	assert.Equal(t, "Ada Lovelace", entries(e)[2].Command)

	e.Begin("ada@example.com")
	job := e.Begin("Hello from the tests")
	require.True(t, job.Async())
	assert.Equal(t, "Sending message...", job.Immediate.Output.Text)
	assert.False(t, form.Active())

	e.Finish(job.Await(context.Background()))
	last := entries(e)[len(entries(e))-1]
	assert.Empty(t, last.Command)
	assert.Contains(t, last.Output, "MESSAGE SENT SUCCESSFULLY")

	assert.Equal(t, []string{"mail"}, history(e))
	require.Len(t, api.Contacts(), 1)
	assert.Equal(t, "Ada Lovelace", api.Contacts()[0].Name)
}

func TestCancelForm(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	assert.False(t, e.CancelForm())
	e.Begin("mail")
	assert.True(t, e.CancelForm())
	assert.False(t, e.FormActive())
	assert.Equal(t, "Contact form cancelled.", entries(e)[len(entries(e))-1].Output)

	e.Begin("pwd")
	assert.Equal(t, "/home/visitor", entries(e)[len(entries(e))-1].Output)
}

func TestCompletion(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	assert.Equal(t, []string{"echo"}, e.Suggest("ec"))
	assert.NotContains(t, e.Suggest(""), "clear")
	assert.Equal(t, []string{"about.txt"}, e.Suggest("cat ab"))

	input, strip := e.Complete("ec")
	assert.Equal(t, "echo ", input)
	assert.False(t, strip.Visible())

	e.MergeDirectory("blog", []string{"hello-world.md"})
	e.Begin("cd blog")
	input, _ = e.Complete("./hel")
	assert.Equal(t, "./hello-world ", input)

	names, dirEntries := e.CompletionSource()
	assert.Contains(t, names, "help")
	assert.Equal(t, []string{"hello-world"}, dirEntries)
}
