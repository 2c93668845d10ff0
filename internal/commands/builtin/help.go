package builtin

import (
	"fmt"
	"strings"

	"termfolio/internal/commands"
)

func helpLine(label, description string) string {
	return fmt.Sprintf("  %-11s - %s", label, description)
}

func renderHelp(registry *commands.Registry, features commands.Features) string {
	grouped := make(map[string][]*commands.Spec)
	for _, spec := range registry.Specs() {
		if spec.Group == "" {
			continue
		}
		grouped[spec.Group] = append(grouped[spec.Group], spec)
	}

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, group := range groupOrder {
		specs := grouped[group]
		if len(specs) == 0 {
			continue
		}
		sb.WriteString("\n" + group + ":\n")
		for _, spec := range specs {
			sb.WriteString(helpLine(spec.Usage, spec.Description) + "\n")
			if spec.Name == "cat" {
				sb.WriteString(helpLine("./<file>", "Execute file") + "\n")
			}
		}
	}

	if features.Secrets {
		sb.WriteString("\nTYPE 'secrets' TO SEE DISCOVERED EASTER EGGS")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// manPage renders the manual entry of spec.
func manPage(spec *commands.Spec) string {
	description := spec.Manual
	if description == "" {
		description = spec.Description + "."
	}
	return fmt.Sprintf("%s(1)\n\nNAME\n    %s - %s\n\nSYNOPSIS\n    %s\n\nDESCRIPTION\n    %s",
		strings.ToUpper(spec.Name), spec.Name, lowerFirst(spec.Description), spec.Usage, description)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
