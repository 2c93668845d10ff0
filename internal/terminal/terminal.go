package terminal

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/shell"
)

// Run shows the full-screen terminal until the user quits or ctx is done.
func Run(ctx context.Context, sh *shell.Shell) error {
	model := New(ctx, sh)
	defer model.cancel()

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
