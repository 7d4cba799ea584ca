package docs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cfs-ui/cfs-docs/internal/logging"
)

var loaderLog = logging.ForComponent(logging.CompLoader)

// DefaultDocsFile is the document read when no path is configured.
const DefaultDocsFile = "DOCS.md"

// Section is a top-level chunk of the source document.
type Section struct {
	Title string
	Body  string
}

// isTopHeading reports whether line opens a top-level section ("# Title").
// "## Title" and "#Title" do not qualify.
func isTopHeading(line string) bool {
	return strings.HasPrefix(line, "# ")
}

// ParseSections splits raw markdown on top-level heading lines. Text before
// the first heading becomes its own section titled by its first line.
// Whitespace-only chunks are dropped.
func ParseSections(raw string) []Section {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	var sections []Section
	var chunk []string

	flush := func() {
		if len(chunk) == 0 {
			return
		}
		title := strings.TrimSpace(strings.TrimPrefix(chunk[0], "# "))
		body := strings.TrimSpace(strings.Join(chunk[1:], "\n"))
		chunk = nil
		if title == "" && body == "" {
			return
		}
		sections = append(sections, Section{Title: title, Body: body})
	}

	for _, line := range lines {
		if isTopHeading(line) {
			flush()
		}
		chunk = append(chunk, line)
	}
	flush()

	return sections
}

// Matches reports whether the section belongs to the navigation title: its
// own title starts with it, or a body line starts with "## " followed by
// it. Both comparisons ignore case, so "# Introduction to CFS UI" matches
// "Introduction".
func (s Section) Matches(title string) bool {
	title = strings.ToLower(strings.TrimSpace(title))
	if strings.HasPrefix(strings.ToLower(s.Title), title) {
		return true
	}
	sub := "## " + title
	for _, line := range strings.Split(s.Body, "\n") {
		if strings.HasPrefix(strings.ToLower(line), sub) {
			return true
		}
	}
	return false
}

// Attach returns a copy of nav where every item carries the body of the
// first matching section, or empty content when none matches.
func Attach(nav []NavItem, sections []Section) []NavItem {
	out := CloneNav(nav)
	for i := range out {
		body := ""
		for _, s := range sections {
			if s.Matches(out[i].Title) {
				body = s.Body
				break
			}
		}
		out[i].Content = StringPtr(body)
	}
	return out
}

// FileSource loads navigation content from one local markdown file.
type FileSource struct {
	Path string
	Nav  []NavItem
}

// NewFileSource returns a source for path using nav, or the default list
// when nav is empty.
func NewFileSource(path string, nav []NavItem) *FileSource {
	if path == "" {
		path = DefaultDocsFile
	}
	if len(nav) == 0 {
		nav = DefaultNav()
	}
	return &FileSource{Path: path, Nav: CloneNav(nav)}
}

// Load reads and indexes the document. On failure it still returns the
// navigation list, with no content attached, together with the cause.
func (f *FileSource) Load(ctx context.Context) ([]NavItem, error) {
	fallback := StripContent(f.Nav)

	if err := ctx.Err(); err != nil {
		return fallback, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return fallback, fmt.Errorf("read docs %s: %w", f.Path, err)
	}
	if !utf8.Valid(data) {
		return fallback, fmt.Errorf("parse docs %s: not valid UTF-8", f.Path)
	}

	sections := ParseSections(string(data))
	items := Attach(f.Nav, sections)

	loaderLog.Info("docs_loaded",
		slog.String("path", f.Path),
		slog.Int("sections", len(sections)),
		slog.Int("items", len(items)),
		slog.Int("indexed", CountIndexed(items)))

	for _, item := range items {
		if !item.HasContent() {
			loaderLog.Debug("docs_item_unmatched", slog.String("title", item.Title))
		}
	}

	return items, nil
}
