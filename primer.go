package primer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"primer/book"
	adapterfs "primer/internal/adapters/fs"
	"primer/internal/markdown"
	"primer/internal/presentation/tui"
	"primer/internal/verify"
	"primer/pkg/domain"
	"primer/pkg/ports"
)

// Version is the primer release version.
var Version = "0.4.0"

// Book is the high-level entry point for the primer library. It wraps a
// chapter loader and the markdown compiler behind one API for the CLI, HTTP,
// and MCP surfaces.
type Book struct {
	loader ports.ChapterLoader
	parser *markdown.Parser
	render func(string) (string, error)
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring the Book.
type Option func(*Book)

// WithLoader injects a custom ChapterLoader, bypassing the embedded handbook.
func WithLoader(l ports.ChapterLoader) Option {
	return func(b *Book) {
		b.loader = l
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Book) {
		b.logger = logger
	}
}

// WithRenderer replaces the terminal renderer used by RenderTerm.
func WithRenderer(render func(string) (string, error)) Option {
	return func(b *Book) {
		b.render = render
	}
}

// New opens a book. By default it serves the embedded handbook; pass a
// directory path to load chapters from disk instead (with hot-reload
// support), or WithLoader to supply any backend.
func New(dir string, opts ...Option) (*Book, error) {
	b := &Book{
		parser: markdown.NewParser(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.loader == nil {
		if dir == "" {
			b.loader = adapterfs.New(book.Files)
			b.Name = "server-side-go-primer"
		} else {
			absPath, err := filepath.Abs(dir)
			if err != nil {
				return nil, fmt.Errorf("invalid path: %w", err)
			}
			b.loader = adapterfs.NewDir(absPath)
			b.Name = filepath.Base(absPath)
		}
	} else if dir != "" {
		b.Name = filepath.Base(dir)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	// Set up the terminal renderer here so RenderTerm never mutates shared
	// state under concurrent callers.
	if b.render == nil {
		b.render = tui.NewRenderer()
	}
	if b.Name != "" {
		b.logger = b.logger.With("book", b.Name)
	}

	// Fail fast on books with no chapters at all.
	ids, err := b.loader.List()
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no chapters found")
	}

	return b, nil
}

// Chapter loads and parses a single chapter.
func (b *Book) Chapter(id string) (*domain.Chapter, error) {
	src, err := b.loader.Get(id)
	if err != nil {
		return nil, err
	}
	return b.parser.Parse(id, src)
}

// Raw returns the unparsed Markdown source of a chapter, frontmatter
// stripped. Used by the terminal renderer.
func (b *Book) Raw(id string) ([]byte, error) {
	ch, err := b.Chapter(id)
	if err != nil {
		return nil, err
	}
	return ch.Body, nil
}

// Chapters loads every chapter in reading order (weight, then ID).
func (b *Book) Chapters() ([]*domain.Chapter, error) {
	ids, err := b.loader.List()
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	chapters := make([]*domain.Chapter, 0, len(ids))
	for _, id := range ids {
		ch, err := b.Chapter(id)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		if chapters[i].Meta.Weight != chapters[j].Meta.Weight {
			return chapters[i].Meta.Weight < chapters[j].Meta.Weight
		}
		return chapters[i].ID < chapters[j].ID
	})
	return chapters, nil
}

// TOC returns the reading order, excluding the index chapter itself.
func (b *Book) TOC() ([]domain.TOCEntry, error) {
	chapters, err := b.Chapters()
	if err != nil {
		return nil, err
	}

	toc := make([]domain.TOCEntry, 0, len(chapters))
	for _, ch := range chapters {
		if ch.ID == domain.IndexChapterID {
			continue
		}
		toc = append(toc, domain.TOCEntry{
			ChapterID: ch.ID,
			Title:     ch.Meta.Title,
			Weight:    ch.Meta.Weight,
		})
	}
	return toc, nil
}

// Next returns the chapter after id in reading order, or "" at the end.
func (b *Book) Next(id string) (string, error) {
	return b.neighbor(id, 1)
}

// Prev returns the chapter before id in reading order, or "" at the start.
func (b *Book) Prev(id string) (string, error) {
	return b.neighbor(id, -1)
}

func (b *Book) neighbor(id string, delta int) (string, error) {
	toc, err := b.TOC()
	if err != nil {
		return "", err
	}
	for i, entry := range toc {
		if entry.ChapterID == id {
			j := i + delta
			if j < 0 || j >= len(toc) {
				return "", nil
			}
			return toc[j].ChapterID, nil
		}
	}
	return "", domain.ErrChapterNotFound
}

// First returns the first chapter in reading order.
func (b *Book) First() (string, error) {
	toc, err := b.TOC()
	if err != nil {
		return "", err
	}
	if len(toc) == 0 {
		return "", domain.ErrChapterNotFound
	}
	return toc[0].ChapterID, nil
}

// RenderHTML renders a chapter to HTML honoring its render options.
func (b *Book) RenderHTML(id string) ([]byte, error) {
	ch, err := b.Chapter(id)
	if err != nil {
		return nil, err
	}
	return markdown.RenderHTML(ch.Body, ch.Meta.Render)
}

// RenderTerm renders a chapter for the terminal. The default renderer uses
// glamour with auto style and TTY-aware word wrap.
func (b *Book) RenderTerm(id string) (string, error) {
	body, err := b.Raw(id)
	if err != nil {
		return "", err
	}
	return b.render(string(body))
}

// Verify runs the full rule set against the book. Chapters that fail to
// parse become findings rather than aborting the run.
func (b *Book) Verify() ([]domain.Finding, error) {
	ids, err := b.loader.List()
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	var findings []domain.Finding
	chapters := make([]*domain.Chapter, 0, len(ids))
	for _, id := range ids {
		ch, chErr := b.Chapter(id)
		if chErr != nil {
			findings = append(findings, domain.Finding{
				Rule:      "parse",
				Severity:  domain.SeverityError,
				ChapterID: id,
				Message:   chErr.Error(),
			})
			continue
		}
		chapters = append(chapters, ch)
	}

	findings = append(findings, verify.Run(verify.NewBook(chapters))...)
	b.logger.Info("verification complete", "chapters", len(chapters), "findings", len(findings))
	return findings, nil
}

// Search scans chapter bodies for a case-insensitive substring and returns
// one match per chapter with a short excerpt.
func (b *Book) Search(query string) ([]domain.Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query")
	}

	chapters, err := b.Chapters()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matches []domain.Match
	for _, ch := range chapters {
		body := string(ch.Body)
		idx := strings.Index(strings.ToLower(body), needle)
		if idx < 0 {
			continue
		}
		matches = append(matches, domain.Match{
			ChapterID: ch.ID,
			Title:     ch.Meta.Title,
			Excerpt:   excerpt(body, idx, len(query)),
			Offset:    idx,
		})
	}
	return matches, nil
}

// Watch returns a channel that signals when the underlying book changes.
// Returns an error if the loader does not support watching.
func (b *Book) Watch(ctx context.Context) (<-chan struct{}, error) {
	if w, ok := b.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}

// Loader returns the underlying chapter loader.
func (b *Book) Loader() ports.ChapterLoader {
	return b.loader
}

// excerpt cuts a readable single-line window around a match. Window edges
// are widened to rune boundaries so multi-byte characters never get split.
func excerpt(body string, idx, matchLen int) string {
	start := idx - 40
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(body[start]) {
		start--
	}

	end := idx + matchLen + 40
	if end > len(body) {
		end = len(body)
	}
	for end < len(body) && !utf8.RuneStart(body[end]) {
		end++
	}

	snippet := strings.ReplaceAll(body[start:end], "\n", " ")
	return strings.TrimSpace(snippet)
}
