// Package content serves portfolio content from a markdown tree: directory
// listings, rendered files, blog and portfolio metadata, and the resume.
package content

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"termfolio/internal/logger"
	"termfolio/pkg/termtypes"
)

// Top-level content directories and well-known files.
const (
	BlogDir      = "blog"
	PortfolioDir = "portfolio"

	resumeMarkdown = "resume.md"
	resumeText     = "resume.txt"
	resumePDF      = "resume.pdf"

	// ResumeDownloadPath is the route that streams resume.pdf.
	ResumeDownloadPath = "/api/content/resume/download"
)

// DefaultWordWrap is the rendered markdown width.
const DefaultWordWrap = 80

var (
	// ErrNotFound is returned for missing directories and files.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPath is returned for paths that escape the content root.
	ErrInvalidPath = errors.New("invalid path")
)

// publishedLayouts are tried in order when sorting blog posts.
var publishedLayouts = []string{"2006-01-02", "Jan 2006", "January 2006"}

// Store reads content from an fs.FS. It is safe for concurrent use.
type Store struct {
	fsys     fs.FS
	renderer *glamour.TermRenderer
	// glamour renderers are not safe for concurrent use
	renderMu sync.Mutex

	resumeMu sync.Mutex
	resume   *termtypes.Resume
}

// NewStore creates a store over fsys rendering markdown with the ascii style.
func NewStore(fsys fs.FS) (*Store, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("ascii"),
		glamour.WithWordWrap(DefaultWordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Store{fsys: fsys, renderer: renderer}, nil
}

// cleanPath validates a slash-separated content path.
func cleanPath(p string) (string, error) {
	p = strings.TrimPrefix(strings.TrimSpace(p), "/")
	if p == "" || strings.Contains(p, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	cleaned := path.Clean(p)
	if !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return cleaned, nil
}

// DirectoryContents lists the regular files of a directory in name order.
func (s *Store) DirectoryContents(name string) ([]string, error) {
	dir, err := cleanPath(name)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory %s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// FileContent returns a file as terminal text. Markdown is rendered after
// its front matter is removed; other files are returned as stored.
func (s *Store) FileContent(p string) (string, error) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file %s: %w", cleaned, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", cleaned, err)
	}
	if !strings.HasSuffix(cleaned, ".md") {
		return string(data), nil
	}
	_, body, err := parseDocument(string(data))
	if err != nil {
		logger.Warn("Ignoring unreadable front matter", "path", cleaned, "error", err)
	}
	return s.render(body)
}

func (s *Store) render(markdown string) (string, error) {
	s.renderMu.Lock()
	out, err := s.renderer.Render(markdown)
	s.renderMu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}

// markdownFiles reads every .md file of dir. A missing directory is empty.
func (s *Store) markdownFiles(dir string) (map[string]string, []string, error) {
	names, err := s.DirectoryContents(dir)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	docs := make(map[string]string, len(names))
	var order []string
	for _, name := range names {
		if !strings.HasSuffix(name, termtypes.ExecutableExtension) {
			continue
		}
		data, err := fs.ReadFile(s.fsys, dir+"/"+name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s/%s: %w", dir, name, err)
		}
		docs[name] = string(data)
		order = append(order, name)
	}
	return docs, order, nil
}

// BlogList returns blog metadata sorted newest first; undated posts come last.
func (s *Store) BlogList() ([]termtypes.BlogMetadata, error) {
	docs, order, err := s.markdownFiles(BlogDir)
	if err != nil {
		return nil, err
	}

	type dated struct {
		meta      termtypes.BlogMetadata
		published time.Time
	}
	posts := make([]dated, 0, len(order))
	for _, name := range order {
		meta, body, err := parseDocument(docs[name])
		if err != nil {
			logger.Warn("Skipping blog post", "file", name, "error", err)
			continue
		}
		post := termtypes.BlogMetadata{
			Filename:  name,
			Title:     cmp.Or(meta.Title, titleFromFilename(name)),
			Published: meta.Published,
			Tags:      []string(meta.Tags),
			Excerpt:   cmp.Or(meta.Excerpt, extractExcerpt(body)),
		}
		if post.Tags == nil {
			post.Tags = []string{}
		}
		posts = append(posts, dated{meta: post, published: parsePublished(meta.Published)})
	}

	slices.SortStableFunc(posts, func(a, b dated) int {
		switch {
		case a.published.IsZero() && b.published.IsZero():
			return 0
		case a.published.IsZero():
			return 1
		case b.published.IsZero():
			return -1
		}
		return b.published.Compare(a.published)
	})

	result := make([]termtypes.BlogMetadata, len(posts))
	for i, post := range posts {
		result[i] = post.meta
	}
	return result, nil
}

func parsePublished(value string) time.Time {
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SearchBlog returns posts whose title, excerpt or any tag contains term,
// ignoring case. An empty term returns every post.
func (s *Store) SearchBlog(term string) ([]termtypes.BlogMetadata, error) {
	posts, err := s.BlogList()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return posts, nil
	}
	matches := make([]termtypes.BlogMetadata, 0, len(posts))
	for _, post := range posts {
		if containsFold(post.Title, term) || containsFold(post.Excerpt, term) ||
			slices.ContainsFunc(post.Tags, func(tag string) bool { return containsFold(tag, term) }) {
			matches = append(matches, post)
		}
	}
	return matches, nil
}

// PortfolioList returns portfolio metadata in file name order.
func (s *Store) PortfolioList() ([]termtypes.PortfolioMetadata, error) {
	docs, order, err := s.markdownFiles(PortfolioDir)
	if err != nil {
		return nil, err
	}
	projects := make([]termtypes.PortfolioMetadata, 0, len(order))
	for _, name := range order {
		meta, body, err := parseDocument(docs[name])
		if err != nil {
			logger.Warn("Skipping portfolio project", "file", name, "error", err)
			continue
		}
		project := termtypes.PortfolioMetadata{
			Filename:     name,
			Title:        cmp.Or(meta.Title, titleFromFilename(name)),
			Technologies: []string(meta.Technologies),
			Company:      meta.Company,
			Year:         meta.Year,
			Excerpt:      cmp.Or(meta.Excerpt, extractExcerpt(body)),
		}
		if project.Technologies == nil {
			project.Technologies = []string{}
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// FilterPortfolio returns projects with a technology containing tech,
// ignoring case. An empty tech returns every project.
func (s *Store) FilterPortfolio(tech string) ([]termtypes.PortfolioMetadata, error) {
	projects, err := s.PortfolioList()
	if err != nil {
		return nil, err
	}
	tech = strings.ToLower(strings.TrimSpace(tech))
	if tech == "" {
		return projects, nil
	}
	matches := make([]termtypes.PortfolioMetadata, 0, len(projects))
	for _, project := range projects {
		if slices.ContainsFunc(project.Technologies, func(t string) bool { return containsFold(t, tech) }) {
			matches = append(matches, project)
		}
	}
	return matches, nil
}

// Resume returns the resume text, rendered from resume.md or read from
// resume.txt, and the download route when resume.pdf exists. The result is
// computed once.
func (s *Store) Resume() (*termtypes.Resume, error) {
	s.resumeMu.Lock()
	defer s.resumeMu.Unlock()
	if s.resume != nil {
		resume := *s.resume
		return &resume, nil
	}

	var text string
	if data, err := fs.ReadFile(s.fsys, resumeMarkdown); err == nil {
		_, body, _ := parseDocument(string(data))
		if text, err = s.render(body); err != nil {
			return nil, err
		}
	} else if data, err := fs.ReadFile(s.fsys, resumeText); err == nil {
		text = strings.TrimSpace(string(data))
	} else {
		return nil, fmt.Errorf("resume: %w", ErrNotFound)
	}

	resume := &termtypes.Resume{Text: text}
	if _, err := fs.Stat(s.fsys, resumePDF); err == nil {
		resume.DownloadURL = ResumeDownloadPath
	}
	s.resume = resume
	logger.Debug("Resume loaded", "length", len(text), "download", resume.DownloadURL != "")

	cached := *resume
	return &cached, nil
}

// ResumePDF returns the raw bytes of resume.pdf.
func (s *Store) ResumePDF() ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, resumePDF)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("resume pdf: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", resumePDF, err)
	}
	return data, nil
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
