// Package builtin provides the built-in termfolio commands.
// Build assembles a fresh registry from an explicit environment on every
// dispatch, so handlers always see the current session state.
package builtin

import (
	"fmt"

	"termfolio/internal/commands"
)

// Help groups, in display order. Commands with an empty group are hidden from help.
const (
	GroupNavigation    = "NAVIGATION"
	GroupFiles         = "FILE OPERATIONS"
	GroupInformation   = "INFORMATION"
	GroupContent       = "CONTENT"
	GroupCommunication = "COMMUNICATION"
	GroupFun           = "FUN STUFF"
	GroupAutomotive    = "AUTOMOTIVE"
	GroupThemes        = "THEMES"
)

var groupOrder = []string{
	GroupNavigation,
	GroupFiles,
	GroupInformation,
	GroupContent,
	GroupCommunication,
	GroupFun,
	GroupAutomotive,
	GroupThemes,
}

type builder struct {
	env      *commands.Env
	registry *commands.Registry
}

// Build creates the command registry for env. Optional groups are included
// according to env.Features.
func Build(env *commands.Env) *commands.Registry {
	b := &builder{env: env, registry: commands.NewRegistry()}

	b.add(commands.Spec{
		Name:        "help",
		Description: "Show this help message",
		Usage:       "help",
		Group:       GroupInformation,
		Manual:      "Displays a list of all available terminal commands.",
	})

	b.navigation()
	b.files()
	b.information()
	if env.Features.Content {
		b.content()
	}
	b.communication()
	b.fun()
	if env.Features.Secrets {
		b.secrets()
	}
	if env.Features.Themes {
		b.themes()
	}

	help, _ := b.registry.Get("help")
	help.Handler = commands.Constant(renderHelp(b.registry, env.Features))

	return b.registry
}

// add registers spec. Built-in names are fixed, so a collision is a programming error.
func (b *builder) add(spec commands.Spec) {
	if err := b.registry.Register(spec); err != nil {
		panic(fmt.Sprintf("failed to register %s command: %v", spec.Name, err))
	}
}

// unlock records a secret when the secrets feature is enabled.
func (b *builder) unlock(key string) {
	if b.env.Features.Secrets {
		b.env.Session.Secrets().Unlock(key)
	}
}

// ClipboardAvailable reports whether this build can reach a system clipboard.
func ClipboardAvailable() bool {
	return clipboardAvailable
}
