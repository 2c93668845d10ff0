package builtin

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"termfolio/internal/config"
)

// RenderStaticFiles renders every file in fsys as a template over owner and
// returns the results keyed by file name.
func RenderStaticFiles(fsys fs.FS, owner config.Owner) (map[string]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read static files: %w", err)
	}

	funcs := template.FuncMap{"upper": strings.ToUpper}
	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read static file %s: %w", entry.Name(), err)
		}
		tmpl, err := template.New(entry.Name()).Funcs(funcs).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse static file %s: %w", entry.Name(), err)
		}
		var sb strings.Builder
		if err := tmpl.Execute(&sb, owner); err != nil {
			return nil, fmt.Errorf("failed to render static file %s: %w", entry.Name(), err)
		}
		files[entry.Name()] = strings.TrimRight(sb.String(), "\n")
	}
	return files, nil
}
