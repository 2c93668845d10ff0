// Package shell interprets terminal input lines. It dispatches commands
// against a registry built fresh for every line, records transcript and
// history entries, and routes input to the contact form while it is active.
package shell

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/commands"
	"termfolio/internal/commands/builtin"
	"termfolio/internal/completion"
	"termfolio/internal/logger"
	"termfolio/internal/services"
	"termfolio/pkg/termtypes"
)

// Form is the interactive contact form consulted before dispatch.
type Form interface {
	Active() bool
	Handle(line string) services.FormStep
	Cancel()
}

// Result is a resolved line waiting to be recorded.
type Result struct {
	Command string
	Output  commands.Output
	// Record pushes Command onto the command history.
	Record bool
}

// Job is the outcome of Begin. Immediate has already been recorded;
// asynchronous work is run with Await and recorded with Finish.
type Job struct {
	Line    string
	Ignored bool
	// ClearInput reports that the input line is cleared before the job resolves.
	ClearInput bool
	Immediate  *Result
	await      func(ctx context.Context) Result
}

// Async reports whether the job still has work to await.
func (j Job) Async() bool {
	return j.await != nil
}

// Await runs the asynchronous part of the job. It must not touch session
// state, so it is safe to call off the event loop.
func (j Job) Await(ctx context.Context) Result {
	if j.await == nil {
		if j.Immediate != nil {
			return *j.Immediate
		}
		return Result{Output: commands.Silent()}
	}
	return j.await(ctx)
}

// Executor interprets input lines against an environment.
type Executor struct {
	env  *commands.Env
	form Form
}

// NewExecutor creates an executor over env. form may be nil.
func NewExecutor(env *commands.Env, form Form) *Executor {
	return &Executor{env: env, form: form}
}

// Env returns the command environment.
func (e *Executor) Env() *commands.Env {
	return e.env
}

// FormActive reports whether input is currently routed to the contact form.
func (e *Executor) FormActive() bool {
	return e.form != nil && e.form.Active()
}

// CancelForm abandons an active contact form.
func (e *Executor) CancelForm() bool {
	if !e.FormActive() {
		return false
	}
	e.form.Cancel()
	e.record(Result{Output: commands.Info("Contact form cancelled.")})
	return true
}

// Begin starts interpreting line. Synchronous commands are resolved and
// recorded before Begin returns.
func (e *Executor) Begin(line string) Job {
	if e.FormActive() {
		return e.beginForm(line)
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Job{Ignored: true}
	}

	if filename, ok := strings.CutPrefix(trimmed, completion.ExecPrefix); ok {
		logger.CommandExecution(completion.ExecPrefix, filename, e.env.Session.Navigation().CurrentPath())
		fetch := builtin.RunExecutable(e.env, filename)
		return Job{
			Line:       trimmed,
			ClearInput: true,
			await: func(ctx context.Context) Result {
				return Result{Command: trimmed, Output: fetch(ctx), Record: true}
			},
		}
	}

	fields := strings.Fields(trimmed)
	name := fields[0]
	args := strings.Join(fields[1:], " ")

	registry := builtin.Build(e.env)
	spec, ok := registry.Get(name)
	if !ok {
		result := Result{
			Command: trimmed,
			Output:  commands.Fail(fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", name)),
			Record:  true,
		}
		e.record(result)
		return Job{Line: trimmed, Immediate: &result}
	}

	logger.CommandExecution(spec.Name, args, e.env.Session.Navigation().CurrentPath())
	if spec.IsAsync() {
		return Job{
			Line: trimmed,
			await: func(ctx context.Context) Result {
				return Result{Command: trimmed, Output: invoke(ctx, spec, args), Record: true}
			},
		}
	}

	result := Result{Command: trimmed, Output: invoke(context.Background(), spec, args), Record: true}
	e.record(result)
	return Job{Line: trimmed, Immediate: &result}
}

func (e *Executor) beginForm(line string) Job {
	answer := strings.TrimSpace(line)
	step := e.form.Handle(line)
	result := Result{Command: answer, Output: step.Output}
	e.record(result)

	job := Job{Line: answer, Immediate: &result}
	if submit := step.Submit; submit != nil {
		job.await = func(ctx context.Context) Result {
			return Result{Output: submit(ctx)}
		}
	}
	return job
}

// invoke runs spec and converts handler faults into an error-kind output.
func invoke(ctx context.Context, spec *commands.Spec, args string) commands.Output {
	out, err := spec.Invoke(ctx, args)
	if err != nil {
		logger.Error("Command failed", "command", spec.Name, "error", err)
		return commands.Fail(fmt.Sprintf("Error executing %s: %s", spec.Name, err.Error()))
	}
	return out
}

// Finish records the result of an awaited job. Results are recorded in the
// order Finish is called.
func (e *Executor) Finish(result Result) {
	e.record(result)
}

func (e *Executor) record(result Result) {
	if result.Output.Silent {
		return
	}
	e.env.Session.Transcript().Append(termtypes.TranscriptEntry{
		Command: result.Command,
		Output:  result.Output.Text,
		Kind:    result.Output.Kind,
	})
	if result.Record {
		e.env.Session.History().Push(result.Command)
	}
}

// CompletionSource returns the command names and the raw names of the
// current directory's entries.
func (e *Executor) CompletionSource() (names, entries []string) {
	names = builtin.Build(e.env).Names()
	if dir, ok := e.env.FS.Resolve(e.env.Session.Navigation().CurrentPath()); ok && dir.IsDir() {
		for _, entry := range e.env.FS.List(dir) {
			entries = append(entries, entry.Name)
		}
	}
	return names, entries
}

// Suggest returns the completion candidates for input.
func (e *Executor) Suggest(input string) []string {
	names, entries := e.CompletionSource()
	return completion.Suggest(input, names, entries)
}

// Complete applies Tab to input.
func (e *Executor) Complete(input string) (string, completion.Strip) {
	return completion.Complete(input, e.Suggest(input))
}

// MergeDirectory loads a content directory listing into the filesystem.
func (e *Executor) MergeDirectory(name string, filenames []string) {
	e.env.FS.MergeDirectory(name, filenames)
	logger.Debug("Directory merged", "directory", name, "files", len(filenames))
}
