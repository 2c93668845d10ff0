package commands

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// BoxWidth is the inner width of every framed box.
const BoxWidth = 60

// Box frames lines with double-line borders. A line equal to "-" becomes a separator.
func Box(title string, lines ...string) string {
	var sb strings.Builder
	sb.WriteString("╔" + strings.Repeat("═", BoxWidth) + "╗\n")
	if title != "" {
		sb.WriteString("║" + Center(title, BoxWidth) + "║\n")
		sb.WriteString("╠" + strings.Repeat("═", BoxWidth) + "╣\n")
	}
	for _, line := range lines {
		if line == "-" {
			sb.WriteString("╠" + strings.Repeat("═", BoxWidth) + "╣\n")
			continue
		}
		sb.WriteString("║" + PadRight("  "+line, BoxWidth) + "║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", BoxWidth) + "╝")
	return sb.String()
}

// PadRight pads s with spaces to width display cells, truncating when longer.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// Center centers s within width display cells.
func Center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
