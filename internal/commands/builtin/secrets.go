package builtin

import (
	"fmt"
	"strings"

	"termfolio/internal/commands"
	tcontext "termfolio/internal/context"
)

var automotiveSecrets = []string{"automotive_enthusiast", "mechanic", "vtec_kicked_in"}

func (b *builder) secrets() {
	env := b.env
	session := env.Session

	art := func(secret, text string) commands.Handler {
		return commands.Sync(func(string) (commands.Output, error) {
			b.unlockAutomotive(secret)
			return commands.Info(strings.TrimPrefix(text, "\n")), nil
		})
	}

	b.add(commands.Spec{Name: "car", Description: "Show dream car", Usage: "car", Group: GroupAutomotive,
		Handler: art("automotive_enthusiast", carArt)})
	b.add(commands.Spec{Name: "diagnostics", Description: "System diagnostics", Usage: "diagnostics", Group: GroupAutomotive,
		Handler: art("mechanic", diagnosticsArt)})
	b.add(commands.Spec{Name: "vtec", Description: "You know what this does...", Usage: "vtec", Group: GroupAutomotive,
		Handler: art("vtec_kicked_in", vtecArt)})

	b.add(commands.Spec{
		Name:        "gm",
		Description: "Day job",
		Usage:       "gm",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			b.unlock("gm_employee")
			return commands.Info(commands.Box("GENERAL MOTORS",
				"",
				"Where the day job happens.",
				"",
				"Working on:",
				"• Reliability of in-vehicle services",
				"• High-performance distributed systems",
				"",
			)), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "konami",
		Description: "Up up down down",
		Usage:       "konami",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			b.unlock("konami_code")
			session.Settings().SetTurbo(true)
			return commands.Info(strings.TrimPrefix(konamiArt, "\n")), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "hack",
		Description: "Hack the mainframe",
		Usage:       "hack",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			b.unlock("hacker")
			return commands.Info(strings.TrimPrefix(hackArt, "\n")), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "sudo",
		Description: "Run a command as root",
		Usage:       "sudo <command>",
		Args:        commands.ArgsFull,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			b.unlock("tried_sudo")
			return commands.Info(fmt.Sprintf(`[sudo] password for %s:
Nice try! 😄 But this is a portfolio, not a real terminal.
You don't have sudo access here (and wouldn't want it anyway!)

Pro tip: Try 'secrets' to see what easter eggs you've found!`, session.Username())), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "turbo",
		Description: "Toggle instant output",
		Usage:       "turbo",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			if session.Settings().ToggleTurbo() {
				return commands.Info("Turbo Mode ENABLED! ⚡🏎️💨"), nil
			}
			return commands.Info("Turbo Mode DISABLED! 🐌"), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "secrets",
		Description: "List discovered easter eggs",
		Usage:       "secrets",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			return commands.Info(secretsReport(session.Secrets().Unlocked())), nil
		}),
	})
}

// unlockAutomotive unlocks secret and awards gearhead once every automotive secret is found.
func (b *builder) unlockAutomotive(secret string) {
	b.unlock(secret)
	for _, key := range automotiveSecrets {
		if !b.env.Session.Secrets().IsUnlocked(key) {
			return
		}
	}
	b.unlock("gearhead")
}

func secretsReport(unlocked []string) string {
	if len(unlocked) == 0 {
		return "No secrets discovered yet! Keep exploring...\nTry some commands you might not expect to work. 😉"
	}

	var sb strings.Builder
	sb.WriteString("╔════════════════════════════════════════╗\n")
	sb.WriteString("║      DISCOVERED EASTER EGGS            ║\n")
	sb.WriteString("╠════════════════════════════════════════╣\n")
	for _, key := range unlocked {
		sb.WriteString("║ " + tcontext.SecretTitle(key) + "\n")
	}
	sb.WriteString("╚════════════════════════════════════════╝\n")
	fmt.Fprintf(&sb, "\nProgress: %d/%d secrets discovered", len(unlocked), len(tcontext.Secrets))
	return sb.String()
}
