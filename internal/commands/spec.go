// Package commands provides command registration and invocation for termfolio.
// A command is a Spec: a name, help metadata, an argument convention and a
// handler that is one of a closed set of variants.
package commands

import (
	"context"
	"fmt"
	"strings"

	"termfolio/pkg/termtypes"
)

// ArgMode is the fixed calling convention of a command.
type ArgMode int

const (
	// ArgsNone ignores any arguments.
	ArgsNone ArgMode = iota
	// ArgsFull passes the remaining argument string verbatim.
	ArgsFull
	// ArgsFirst passes only the first whitespace-delimited token, or "".
	ArgsFirst
)

// String returns the convention name.
func (m ArgMode) String() string {
	switch m {
	case ArgsFull:
		return "full"
	case ArgsFirst:
		return "first"
	default:
		return "none"
	}
}

// Select applies the convention to an argument string.
func (m ArgMode) Select(args string) string {
	switch m {
	case ArgsFull:
		return args
	case ArgsFirst:
		fields := strings.Fields(args)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	default:
		return ""
	}
}

// Output is the result of a handler.
type Output struct {
	Text string
	Kind termtypes.OutputKind
	// Silent suppresses the transcript entry and the history record.
	Silent bool
}

// Info returns an info-kind output.
func Info(text string) Output {
	return Output{Text: text, Kind: termtypes.OutputInfo}
}

// Success returns a success-kind output.
func Success(text string) Output {
	return Output{Text: text, Kind: termtypes.OutputSuccess}
}

// Fail returns an error-kind output for not-found and usage messages.
func Fail(text string) Output {
	return Output{Text: text, Kind: termtypes.OutputError}
}

// Silent returns an output that produces no transcript entry.
func Silent() Output {
	return Output{Silent: true}
}

// HandlerKind tags a Handler variant.
type HandlerKind int

const (
	// HandlerConstant returns fixed text.
	HandlerConstant HandlerKind = iota
	// HandlerSync runs on the caller's goroutine.
	HandlerSync
	// HandlerAsync may block on I/O and is run off the UI event loop.
	HandlerAsync
)

// SyncFunc is a synchronous handler.
type SyncFunc func(args string) (Output, error)

// AsyncFunc is an asynchronous handler.
type AsyncFunc func(ctx context.Context, args string) (Output, error)

// Handler is a closed variant: constant text, a sync function or an async function.
type Handler struct {
	kind    HandlerKind
	text    string
	syncFn  SyncFunc
	asyncFn AsyncFunc
}

// Constant creates a handler returning text verbatim.
func Constant(text string) Handler {
	return Handler{kind: HandlerConstant, text: text}
}

// Sync creates a synchronous handler.
func Sync(fn SyncFunc) Handler {
	return Handler{kind: HandlerSync, syncFn: fn}
}

// Async creates an asynchronous handler.
func Async(fn AsyncFunc) Handler {
	return Handler{kind: HandlerAsync, asyncFn: fn}
}

// Kind returns the variant tag.
func (h Handler) Kind() HandlerKind {
	return h.kind
}

// Spec describes one command. Manual is the DESCRIPTION section of its man
// page; Description is used when it is empty.
type Spec struct {
	Name        string
	Description string
	Usage       string
	Group       string
	Manual      string
	Args        ArgMode
	Handler     Handler
}

// IsAsync reports whether the command must be awaited.
func (s *Spec) IsAsync() bool {
	return s.Handler.kind == HandlerAsync
}

// Invoke runs the handler with the command's argument convention applied to
// args. Panics raised by the handler are recovered and returned as errors.
func (s *Spec) Invoke(ctx context.Context, args string) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	selected := s.Args.Select(args)
	switch s.Handler.kind {
	case HandlerConstant:
		return Info(s.Handler.text), nil
	case HandlerSync:
		if s.Handler.syncFn == nil {
			return Output{}, fmt.Errorf("command %s has no handler", s.Name)
		}
		return s.Handler.syncFn(selected)
	case HandlerAsync:
		if s.Handler.asyncFn == nil {
			return Output{}, fmt.Errorf("command %s has no handler", s.Name)
		}
		return s.Handler.asyncFn(ctx, selected)
	default:
		return Output{}, fmt.Errorf("command %s has unknown handler kind %d", s.Name, s.Handler.kind)
	}
}
