package builtin

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/commands"
	"termfolio/internal/filesystem"
	"termfolio/internal/logger"
	"termfolio/pkg/termtypes"
)

func (b *builder) files() {
	env := b.env

	b.add(commands.Spec{
		Name:        "cat",
		Description: "Display file contents",
		Usage:       "cat <file>",
		Group:       GroupFiles,
		Manual:      "Displays the contents of the specified file.",
		Args:        commands.ArgsFirst,
		Handler: commands.Sync(func(name string) (commands.Output, error) {
			return cat(env, name), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "grep",
		Description: "Search within files",
		Usage:       "grep <text>",
		Group:       GroupFiles,
		Manual:      "Lists entries of the current directory whose names contain the search term.",
		Args:        commands.ArgsFull,
		Handler: commands.Sync(func(term string) (commands.Output, error) {
			if term == "" {
				return commands.Fail("Usage: grep <search term>"), nil
			}
			node, ok := env.FS.Resolve(env.Session.Navigation().CurrentPath())
			if !ok || !node.IsDir() {
				return commands.Fail("grep: cannot access current directory"), nil
			}
			needle := strings.ToLower(term)
			var matches []string
			for _, child := range node.Children() {
				if strings.Contains(strings.ToLower(child.Name), needle) {
					matches = append(matches, child.Name+": matched")
				}
			}
			if len(matches) == 0 {
				return commands.Fail(fmt.Sprintf("grep: no matches found for '%s'", term)), nil
			}
			return commands.Info(strings.Join(matches, "\n")), nil
		}),
	})

	b.add(commands.Spec{
		Name:        "find",
		Description: "Find files by name",
		Usage:       "find <name>",
		Group:       GroupFiles,
		Manual:      "Searches the whole home directory for names containing the query.",
		Args:        commands.ArgsFull,
		Handler: commands.Sync(func(query string) (commands.Output, error) {
			if query == "" {
				return commands.Fail("Usage: find <filename>"), nil
			}
			matches := env.FS.Find(env.Session.Navigation().Home(), query)
			if len(matches) == 0 {
				return commands.Fail(fmt.Sprintf("find: '%s': No such file or directory", query)), nil
			}
			return commands.Info(strings.Join(matches, "\n")), nil
		}),
	})
}

func cat(env *commands.Env, name string) commands.Output {
	if name == "" {
		return commands.Fail("Usage: cat <file>")
	}

	if dir, ok := env.FS.Resolve(env.Session.Navigation().CurrentPath()); ok {
		if node, ok := filesystem.Lookup(dir, name); ok {
			switch node.Kind {
			case termtypes.NodeDirectory:
				return commands.Fail(fmt.Sprintf("cat: %s: Is a directory", name))
			case termtypes.NodeExecutable:
				return commands.Fail(fmt.Sprintf("cat: %s: Binary file. Try ./%s", name, name))
			}
		}
	}

	if content, ok := env.StaticFiles[name]; ok {
		return commands.Info(content)
	}
	return commands.Fail(fmt.Sprintf("cat: %s: No such file", name))
}

// ExecutableFunc fetches the content of an executable entry.
type ExecutableFunc func(ctx context.Context) commands.Output

// RunExecutable resolves filename against the current directory right away
// and returns the fetch to run asynchronously. Resolution failures produce a
// function that returns the error message without touching the network.
func RunExecutable(env *commands.Env, filename string) ExecutableFunc {
	fail := func(msg string) ExecutableFunc {
		out := commands.Fail(msg)
		return func(context.Context) commands.Output { return out }
	}

	current := env.Session.Navigation().CurrentPath()
	dir, ok := env.FS.Resolve(current)
	if !ok || !dir.IsDir() {
		return fail(fmt.Sprintf("./%s: No such file or directory", filename))
	}

	node, ok := filesystem.LookupFold(dir, filename)
	if !ok {
		return fail(fmt.Sprintf("./%s: No such file or directory", filename))
	}
	if node.Kind != termtypes.NodeExecutable {
		return fail(fmt.Sprintf("./%s: Permission denied or not executable", filename))
	}

	parent, ok := topLevelDirectory(env, current)
	if !ok {
		return fail(fmt.Sprintf("./%s: Cannot execute from this directory", filename))
	}

	contentPath := parent + "/" + node.SourceName
	api := env.API
	return func(ctx context.Context) commands.Output {
		if api == nil {
			return commands.Fail(fmt.Sprintf("./%s: Error loading content - content service unavailable", filename))
		}
		content, err := api.FileContent(ctx, contentPath)
		if err != nil {
			logger.Debug("Executable fetch failed", "path", contentPath, "error", err)
			return commands.Fail(fmt.Sprintf("./%s: Error loading content - %s", filename, err.Error()))
		}
		if content == "" {
			return commands.Info("Content not available")
		}
		return commands.Info(content)
	}
}

// topLevelDirectory returns the name of the home child that path points at,
// when path is exactly one directory below home.
func topLevelDirectory(env *commands.Env, path string) (string, bool) {
	home := env.Session.Navigation().Home()
	rest, ok := strings.CutPrefix(path, home+"/")
	if !ok {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	node, ok := env.FS.Root().Child(rest)
	if !ok || !node.IsDir() {
		return "", false
	}
	return rest, true
}
