package builtin

import (
	"fmt"
	"strings"

	"termfolio/internal/commands"
)

func (b *builder) communication() {
	env := b.env

	b.add(commands.Spec{
		Name:        "contact",
		Description: "Show contact information",
		Usage:       "contact",
		Group:       GroupCommunication,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			lines := []string{
				"Email: " + env.Owner.Email,
				"LinkedIn: " + env.Owner.LinkedIn,
				"GitHub: " + env.Owner.GitHub,
			}
			if env.Features.Content {
				lines = append(lines, "", "Type 'mail' to send a message from here.")
			}
			return commands.Info(commands.Box("CONTACT DETAILS", lines...)), nil
		}),
	})

	if env.Features.Content {
		b.add(commands.Spec{
			Name:        "mail",
			Description: "Send me a message",
			Usage:       "mail",
			Group:       GroupCommunication,
			Manual:      "Starts an interactive form asking for your name, email and message.",
			Handler: commands.Sync(func(string) (commands.Output, error) {
				if env.Form == nil {
					return commands.Fail("mail: contact form unavailable"), nil
				}
				return commands.Info(env.Form.Start()), nil
			}),
		})
	}

	b.add(commands.Spec{
		Name:        "copy",
		Description: "Copy email, linkedin or github",
		Usage:       "copy <what>",
		Group:       GroupCommunication,
		Manual:      "Copies the email address, LinkedIn URL or GitHub URL to the system clipboard.",
		Args:        commands.ArgsFirst,
		Handler: commands.Sync(func(what string) (commands.Output, error) {
			return copyToClipboard(env, what), nil
		}),
	})
}

func copyToClipboard(env *commands.Env, what string) commands.Output {
	values := map[string]string{
		"email":    env.Owner.Email,
		"linkedin": env.Owner.LinkedIn,
		"github":   env.Owner.GitHub,
	}
	key := strings.ToLower(what)
	value, ok := values[key]
	if !ok {
		return commands.Fail("Usage: copy <email|linkedin|github>")
	}
	if env.Clipboard == nil {
		return commands.Info(fmt.Sprintf("Clipboard unavailable. %s: %s", key, value))
	}
	if err := env.Clipboard.Write(value); err != nil {
		return commands.Info(fmt.Sprintf("Clipboard unavailable (%v). %s: %s", err, key, value))
	}
	return commands.Info(fmt.Sprintf("Copied %s to clipboard: %s", key, value))
}
