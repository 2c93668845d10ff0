package content

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of a markdown document.
type frontMatter struct {
	Title        string   `yaml:"title"`
	Published    string   `yaml:"published"`
	Tags         wordList `yaml:"tags"`
	Excerpt      string   `yaml:"excerpt"`
	Technologies techList `yaml:"technologies"`
	Company      string   `yaml:"company"`
	Year         string   `yaml:"year"`
}

// wordList accepts a YAML sequence or a string separated by commas or
// whitespace. A leading '#' is dropped from every word.
type wordList []string

func (l *wordList) UnmarshalYAML(node *yaml.Node) error {
	items, err := decodeList(node, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if err != nil {
		return err
	}
	words := make([]string, 0, len(items))
	for _, item := range items {
		if word := strings.ReplaceAll(item, "#", ""); word != "" {
			words = append(words, word)
		}
	}
	*l = words
	return nil
}

// techList accepts a YAML sequence or a comma separated string.
type techList []string

func (l *techList) UnmarshalYAML(node *yaml.Node) error {
	items, err := decodeList(node, func(r rune) bool { return r == ',' })
	if err != nil {
		return err
	}
	*l = items
	return nil
}

func decodeList(node *yaml.Node, sep func(rune) bool) ([]string, error) {
	var raw []string
	switch node.Kind {
	case yaml.ScalarNode:
		raw = strings.FieldsFunc(node.Value, sep)
	case yaml.SequenceNode:
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("line %d: expected a list or a separated string", node.Line)
	}
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

// splitFrontMatter separates a leading '---' delimited header from the body.
// Documents without a complete header are returned unchanged.
func splitFrontMatter(doc string) (header, body string) {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	rest, ok := strings.CutPrefix(doc, "---\n")
	if !ok {
		return "", doc
	}
	if after, ok := strings.CutPrefix(rest, "---"); ok {
		return "", strings.TrimPrefix(after, "\n")
	}
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", doc
	}
	body = rest[end+len("\n---"):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}
	return rest[:end], body
}

// parseDocument splits doc and decodes its header.
func parseDocument(doc string) (frontMatter, string, error) {
	header, body := splitFrontMatter(doc)
	var meta frontMatter
	if header == "" {
		return meta, body, nil
	}
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return meta, body, fmt.Errorf("failed to parse front matter: %w", err)
	}
	return meta, body, nil
}

var (
	headingLine = regexp.MustCompile(`(?m)^#+\s+.*$`)
	boldText    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicText  = regexp.MustCompile(`\*([^*]+)\*`)
	inlineCode  = regexp.MustCompile("`([^`]+)`")
)

const (
	excerptParagraphLimit = 200
	excerptLength         = 150
)

// extractExcerpt returns the first paragraph of body with headings and
// inline emphasis removed, or its first 147 characters plus "...".
func extractExcerpt(body string) string {
	text := headingLine.ReplaceAllString(body, "")
	text = boldText.ReplaceAllString(text, "$1")
	text = italicText.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "\n\n"); idx > 0 && idx < excerptParagraphLimit {
		text = text[:idx]
	} else if runes := []rune(text); len(runes) > excerptLength {
		text = string(runes[:excerptLength-3]) + "..."
	}
	return strings.TrimSpace(text)
}

// titleFromFilename turns "go-concurrency-patterns.md" into "go concurrency patterns".
func titleFromFilename(filename string) string {
	return strings.ReplaceAll(strings.TrimSuffix(filename, ".md"), "-", " ")
}
