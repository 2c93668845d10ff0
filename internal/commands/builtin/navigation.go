package builtin

import (
	"fmt"
	"strings"

	"termfolio/internal/commands"
	"termfolio/pkg/termtypes"
)

func (b *builder) navigation() {
	env := b.env

	b.add(commands.Spec{
		Name:        "cd",
		Description: "Change directory",
		Usage:       "cd <directory>",
		Group:       GroupNavigation,
		Manual:      "Changes the current directory to the specified path.",
		Args:        commands.ArgsFirst,
		Handler: commands.Sync(func(dir string) (commands.Output, error) {
			return ChangeDirectory(env, dir), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "ls",
		Description: "List directory contents",
		Usage:       "ls",
		Group:       GroupNavigation,
		Manual:      "Lists files and directories in the current directory.",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			entries, ok := env.FS.ListPath(env.Session.Navigation().CurrentPath())
			if !ok {
				return commands.Fail("ls: cannot access current directory"), nil
			}
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, e.Display())
			}
			return commands.Info(strings.Join(lines, "\n")), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "ll",
		Description: "Long list directory contents",
		Usage:       "ll",
		Group:       GroupNavigation,
		Manual:      "Lists directory contents with permissions, owner, size and date.",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			return longList(env), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "pwd",
		Description: "Print working directory",
		Usage:       "pwd",
		Group:       GroupNavigation,
		Handler: commands.Sync(func(string) (commands.Output, error) {
			return commands.Info(env.Session.Navigation().CurrentPath()), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "tree",
		Description: "Visual directory tree",
		Usage:       "tree",
		Group:       GroupNavigation,
		Manual:      "Draws the entries of the current directory as a tree.",
		Handler: commands.Sync(func(string) (commands.Output, error) {
			return commands.Info(tree(env)), nil
		}),
	})
}

// ChangeDirectory moves the session to dir.
//
// ".." pops one segment but never above the home directory; "~" and "" go
// home; an absolute path replaces the current path. A relative name is only
// accepted from the home directory itself. The move succeeds when dir is a
// child directory of the current directory or the candidate path differs
// from the current one; ".." and "~" always succeed.
func ChangeDirectory(env *commands.Env, dir string) commands.Output {
	nav := env.Session.Navigation()
	current := nav.CurrentPath()
	candidate := current
	always := false

	switch {
	case dir == "..":
		segments := splitSegments(current)
		if len(segments) > 2 {
			candidate = "/" + strings.Join(segments[:len(segments)-1], "/")
		}
		always = true
	case dir == "~" || dir == "":
		candidate = nav.Home()
		always = true
	case strings.HasPrefix(dir, "/"):
		candidate = dir
	default:
		if current != nav.Home() {
			return commands.Fail(fmt.Sprintf("cd: %s: No such directory", dir))
		}
		candidate = current + "/" + dir
	}

	if always || candidate != current || isChildDirectory(env, current, dir) {
		nav.SetCurrentPath(candidate)
		return commands.Success("Changed directory to " + candidate)
	}
	return commands.Fail(fmt.Sprintf("cd: %s: No such directory", dir))
}

func isChildDirectory(env *commands.Env, path, name string) bool {
	node, ok := env.FS.Resolve(path)
	if !ok {
		return false
	}
	child, ok := node.Child(name)
	return ok && child.IsDir()
}

func longList(env *commands.Env) commands.Output {
	entries, ok := env.FS.ListPath(env.Session.Navigation().CurrentPath())
	if !ok {
		return commands.Fail("ls: cannot access current directory")
	}
	if len(entries) == 0 {
		return commands.Info("")
	}

	user := env.Session.Username()
	date := env.Clock().Format("Jan 02, 03:04 PM")

	lines := []string{
		fmt.Sprintf("total %d", len(entries)),
		fmt.Sprintf("drwxr-xr-x  2 %s %s  4096 %s .", user, user, date),
		fmt.Sprintf("drwxr-xr-x  3 %s %s  4096 %s ..", user, user, date),
	}
	for _, e := range entries {
		permissions, size := "-rw-r--r--", "1024"
		switch e.Kind {
		case termtypes.NodeDirectory:
			permissions, size = "drwxr-xr-x", "4096"
		case termtypes.NodeExecutable:
			permissions, size = "-rwxr-xr-x", "2048"
		}
		lines = append(lines, fmt.Sprintf("%s  1 %s %s %6s %s %s", permissions, user, user, size, date, e.Name))
	}
	return commands.Info(strings.Join(lines, "\n"))
}

func tree(env *commands.Env) string {
	current := env.Session.Navigation().CurrentPath()
	lines := []string{strings.TrimSuffix(current, "/") + "/"}

	entries, _ := env.FS.ListPath(current)
	for i, e := range entries {
		connector := "├── "
		if i == len(entries)-1 {
			connector = "└── "
		}
		name := e.Name
		switch e.Kind {
		case termtypes.NodeDirectory:
			name += "/"
		case termtypes.NodeExecutable:
			name += "*"
		}
		lines = append(lines, connector+name)
	}
	return strings.Join(lines, "\n")
}

func splitSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
