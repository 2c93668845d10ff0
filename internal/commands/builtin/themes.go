package builtin

import (
	"fmt"
	"strings"

	"termfolio/internal/commands"
)

func (b *builder) themes() {
	env := b.env

	b.add(commands.Spec{
		Name:        "theme",
		Description: "List or switch color themes",
		Usage:       "theme [name]",
		Group:       GroupThemes,
		Manual:      "Without a name, lists the available themes. With a name, switches to it and remembers the choice.",
		Args:        commands.ArgsFirst,
		Handler: commands.Sync(func(name string) (commands.Output, error) {
			if env.Themes == nil {
				return commands.Fail("theme: themes unavailable"), nil
			}
			if name == "" {
				return commands.Info(themeList(env.Themes)), nil
			}
			name = strings.ToLower(name)
			if err := env.Themes.SwitchTheme(name); err != nil {
				return commands.Fail(fmt.Sprintf("theme: unknown theme '%s'. Type 'theme' to list themes.", name)), nil
			}
			env.Session.Settings().SetTheme(name)
			return commands.Info("Theme changed to " + name), nil
		}),
	})
}

func themeList(themes commands.ThemeSwitcher) string {
	current := themes.CurrentTheme()
	lines := []string{"Available themes:"}
	for _, name := range themes.ThemeNames() {
		if name == current {
			lines = append(lines, "  * "+name+" (current)")
		} else {
			lines = append(lines, "    "+name)
		}
	}
	lines = append(lines, "", "Usage: theme <name>")
	return strings.Join(lines, "\n")
}
