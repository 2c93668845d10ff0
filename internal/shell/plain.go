package shell

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/abiosoft/readline"

	"termfolio/internal/commands"
	"termfolio/internal/logger"
	"termfolio/internal/output"
)

// RunPlain runs the line-oriented shell on the standard streams until the
// user exits or ctx is cancelled.
func (s *Shell) RunPlain(ctx context.Context) error {
	out := io.Writer(os.Stdout)
	sh := ishell.NewWithConfig(&readline.Config{
		Prompt:       s.Prompt(),
		AutoComplete: s.AutoComplete,
		Stdout:       os.Stdout,
	})
	// help and clear are termfolio commands
	sh.DeleteCmd("help")
	sh.DeleteCmd("clear")

	sh.Interrupt(func(c *ishell.Context, count int, _ string) {
		if s.Executor.CancelForm() {
			s.printEntry(ctx, out, "Contact form cancelled.", commands.Info(""))
			c.SetPrompt(s.Prompt())
			return
		}
		if count >= 2 {
			c.Println("Interrupted")
			c.Stop()
			return
		}
		c.Println("Input Ctrl-c once more to exit")
	})

	sh.NotFound(func(c *ishell.Context) {
		if s.RunLine(ctx, out, strings.Join(c.RawArgs, " ")) {
			c.ClearScreen()
		}
		c.SetPrompt(s.Prompt())
	})

	go func() {
		<-ctx.Done()
		sh.Stop()
	}()

	s.Startup(ctx)
	sh.SetPrompt(s.Prompt())
	s.printEntry(ctx, out, s.Welcome(), commands.Info(""))

	logger.Debug("Plain shell started", "session", s.Env.Session.SessionID())
	sh.Run()
	sh.Close()
	return nil
}

// RunLine interprets one line and writes its output to w, waiting for
// asynchronous commands. It reports whether the screen should be cleared.
func (s *Shell) RunLine(ctx context.Context, w io.Writer, line string) (clearScreen bool) {
	job := s.Executor.Begin(line)
	if job.Ignored {
		return false
	}
	if job.Immediate != nil {
		if job.Immediate.Output.Silent {
			return isClear(job.Line)
		}
		s.printEntry(ctx, w, job.Immediate.Output.Text, job.Immediate.Output)
	}
	if job.Async() {
		result := job.Await(ctx)
		s.Executor.Finish(result)
		if !result.Output.Silent {
			s.printEntry(ctx, w, result.Output.Text, result.Output)
		}
	}
	return false
}

func isClear(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && strings.EqualFold(fields[0], "clear")
}

// printEntry writes text in the theme color of out's kind, typing it out
// at the effective speed when colors are off.
func (s *Shell) printEntry(ctx context.Context, w io.Writer, text string, out commands.Output) {
	printer := output.NewPrinter(output.WithWriter(w), output.WithStyles(s.Themes), output.WithMode(s.Output))
	if err := printer.Entry(ctx, out.Kind, text, s.EffectiveSpeed()); err != nil && ctx.Err() == nil {
		logger.Debug("Failed to write output", "error", err)
	}
}
