package builtin

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"termfolio/internal/commands"
	"termfolio/internal/logger"
	"termfolio/internal/version"
	"termfolio/pkg/termtypes"
)

func (b *builder) information() {
	env := b.env

	b.add(commands.Spec{
		Name:        "whoami",
		Description: "Display user info",
		Usage:       "whoami",
		Group:       GroupInformation,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			return commands.Info(whoami(env)), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "uname",
		Description: "System information",
		Usage:       "uname",
		Group:       GroupInformation,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			text := fmt.Sprintf("%s (%s Portfolio)\nArchitecture: %s\nPlatform: %s\nRuntime: %s",
				version.Formatted(), env.Owner.Name, runtime.GOARCH, runtime.GOOS, runtime.Version())
			return commands.Info(text), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "date",
		Description: "Current date/time",
		Usage:       "date",
		Group:       GroupInformation,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			return commands.Info(env.Clock().Format("Mon Jan 02 2006 15:04:05 GMT-0700 (MST)")), nil
		}),
	})

	// neofetch runs off the event loop, so it captures identity now.
	username := env.Session.Username()
	ipAddress := env.Session.Identity().IPAddress()
	hostname := hostnameOf(env)
	api := env.API
	b.add(commands.Spec{
		Name:        "neofetch",
		Description: "System info with ASCII art",
		Usage:       "neofetch",
		Group:       GroupInformation,
		Manual:      "Shows backend host details next to a logo, falling back to local runtime details.",
		Handler: commands.Async(func(ctx context.Context, _ string) (commands.Output, error) {
			var info *termtypes.ServerInfo
			if api != nil {
				var err error
				info, err = api.ServerInfo(ctx)
				if err != nil {
					logger.Debug("Server info unavailable, using local details", "error", err)
					info = nil
				}
			}
			return commands.Info(neofetch(username, hostname, ipAddress, info)), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "history",
		Description: "Show command history",
		Usage:       "history",
		Group:       GroupInformation,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			lines := env.Session.History().Lines()
			if len(lines) == 0 {
				return commands.Info("No command history"), nil
			}
			out := make([]string, 0, len(lines))
			for i, line := range lines {
				out = append(out, fmt.Sprintf("  %d  %s", i+1, line))
			}
			return commands.Info(strings.Join(out, "\n")), nil
		}),
	})

	registry := b.registry
	b.add(commands.Spec{
		Name:        "man",
		Description: "Manual for command",
		Usage:       "man <cmd>",
		Group:       GroupInformation,
		Manual:      "Shows the manual page of a command.",
		Args:        commands.ArgsFull,
		Handler: commands.Sync(func(name string) (commands.Output, error) {
			if name == "" {
				return commands.Fail("Usage: man <command>\nTry: man help"), nil
			}
			spec, ok := registry.Get(name)
			if !ok {
				return commands.Fail(fmt.Sprintf("No manual entry for %s\nTry 'help' for available commands.", name)), nil
			}
			return commands.Info(manPage(spec)), nil
		}),
	})
}

func hostnameOf(env *commands.Env) string {
	if host := env.Session.Identity().Hostname(); host != "" {
		return host
	}
	return env.Hostname
}

func whoami(env *commands.Env) string {
	identity := env.Session.Identity()
	if !identity.Resolved() {
		return "visitor@" + env.Hostname
	}
	return fmt.Sprintf("%s@%s (%s)", identity.Username(), hostnameOf(env), identity.IPAddress())
}

const neofetchLogo = `       _____
      /     \
     | () () |
      \  ^  /
       |||||
       |||||
  termfolio`

// neofetch renders host details beside the logo. A nil info falls back to
// details of the local Go runtime.
func neofetch(username, hostname, ipAddress string, info *termtypes.ServerInfo) string {
	var details []string
	if info != nil {
		memUsed, memTotal := info.Memory.UsedPhysical, info.Memory.TotalPhysical
		if memTotal == 0 {
			memUsed, memTotal = info.Memory.HeapUsed, info.Memory.HeapMax
		}
		cores := info.CPU.Cores
		if cores == 0 {
			cores = info.OS.AvailableProcessors
		}
		host := info.Hostname
		if host == "" {
			host = hostname
		}
		details = []string{
			fmt.Sprintf("%s@%s", username, host),
			"────────────────────────────────",
			fmt.Sprintf("OS: %s %s", info.OS.Name, info.OS.Version),
			fmt.Sprintf("Runtime: %s %s", info.Runtime.Name, info.Runtime.Version),
			fmt.Sprintf("Uptime: %s", formatUptime(time.Duration(info.Uptime)*time.Millisecond)),
			fmt.Sprintf("Shell: %s", version.Formatted()),
			fmt.Sprintf("Architecture: %s", info.OS.Arch),
			fmt.Sprintf("CPU: %d cores", cores),
			fmt.Sprintf("Memory: %.1fGB / %.1fGB", gib(memUsed), gib(memTotal)),
			fmt.Sprintf("Client IP: %s", orUnknown(ipAddress)),
		}
	} else {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		details = []string{
			fmt.Sprintf("%s@%s", username, hostname),
			"────────────────────────────────",
			fmt.Sprintf("OS: %s (Client)", runtime.GOOS),
			fmt.Sprintf("Runtime: %s", runtime.Version()),
			fmt.Sprintf("Shell: %s", version.Formatted()),
			fmt.Sprintf("Architecture: %s", runtime.GOARCH),
			fmt.Sprintf("CPU: %d cores", runtime.NumCPU()),
			fmt.Sprintf("Memory: %.1fMB in use", float64(mem.Alloc)/(1024*1024)),
			fmt.Sprintf("Client IP: %s", orUnknown(ipAddress)),
		}
	}

	logo := strings.Split(neofetchLogo, "\n")
	rows := len(details)
	if len(logo) > rows {
		rows = len(logo)
	}
	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(logo) {
			left = logo[i]
		}
		if i < len(details) {
			right = details[i]
		}
		lines = append(lines, strings.TrimRight(commands.PadRight(left, 18)+right, " "))
	}
	return strings.Join(lines, "\n")
}

func gib(bytes uint64) float64 {
	return float64(bytes) / (1024 * 1024 * 1024)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
