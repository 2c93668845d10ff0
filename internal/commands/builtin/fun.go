package builtin

import (
	"strings"

	"termfolio/internal/commands"
)

func (b *builder) fun() {
	env := b.env

	b.add(commands.Spec{
		Name:        "banner",
		Description: "Display ASCII art banner",
		Usage:       "banner",
		Group:       GroupFun,
		Handler:     commands.Constant(banner(env.Owner.Name, env.Owner.Title)),
	})

	b.add(commands.Spec{
		Name:        "cowsay",
		Description: "ASCII art message",
		Usage:       "cowsay <msg>",
		Group:       GroupFun,
		Manual:      "Generates an ASCII art cow saying your message.",
		Args:        commands.ArgsFull,
		Handler: commands.Sync(func(message string) (commands.Output, error) {
			if message == "" {
				return commands.Fail("Usage: cowsay <message>"), nil
			}
			return commands.Info(cowsay(message)), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "matrix",
		Description: "Matrix effect",
		Usage:       "matrix",
		Group:       GroupFun,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			rain := matrixRain(env.Clock().UnixNano(), 8, 48)
			return commands.Info(rain + "\n\nWake up, Neo...\nType 'clear' to exit the matrix."), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "coffee",
		Description: "Take a coffee break",
		Usage:       "coffee",
		Group:       GroupFun,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			b.unlock("coffee_break")
			return commands.Info(strings.TrimPrefix(coffeeArt, "\n")), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "echo",
		Description: "Print text",
		Usage:       "echo <text>",
		Group:       GroupFun,
		Args:        commands.ArgsFull,
		Handler: commands.Sync(func(text string) (commands.Output, error) {
			return commands.Info(text), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "clear",
		Description: "Clear terminal",
		Usage:       "clear",
		Group:       GroupFun,
		Manual:      "Clears the terminal output. Command history is kept.",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			env.Session.Transcript().Clear()
			return commands.Silent(), nil
		}),
	})
}

func banner(name, title string) string {
	return commands.Box("",
		"",
		strings.ToUpper(name),
		title,
		"",
	)
}
