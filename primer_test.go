package primer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"primer"
	"primer/internal/adapters/memory"
	"primer/pkg/domain"
)

func TestNew_EmbeddedBook(t *testing.T) {
	book, err := primer.New("")
	if err != nil {
		t.Fatalf("open embedded book: %v", err)
	}

	if book.Name != "server-side-go-primer" {
		t.Errorf("name: got %q", book.Name)
	}

	toc, err := book.TOC()
	if err != nil {
		t.Fatalf("toc: %v", err)
	}
	if len(toc) != 10 {
		t.Errorf("expected 10 chapters in the table of contents, got %d", len(toc))
	}

	first, err := book.First()
	if err != nil {
		t.Fatal(err)
	}
	if first != "getting-started" {
		t.Errorf("first chapter: got %q", first)
	}
}

// TestEmbeddedBook_Verifies is the book's own gate: the handbook we ship must
// pass every rule it asks of other books.
func TestEmbeddedBook_Verifies(t *testing.T) {
	book, err := primer.New("")
	if err != nil {
		t.Fatal(err)
	}

	findings, err := book.Verify()
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	for _, f := range findings {
		t.Errorf("embedded book finding: %s", f)
	}
}

func TestBook_Navigation(t *testing.T) {
	book, err := primer.New("")
	if err != nil {
		t.Fatal(err)
	}

	next, err := book.Next("getting-started")
	if err != nil {
		t.Fatal(err)
	}
	if next != "modules" {
		t.Errorf("next: got %q", next)
	}

	prev, err := book.Prev("modules")
	if err != nil {
		t.Fatal(err)
	}
	if prev != "getting-started" {
		t.Errorf("prev: got %q", prev)
	}

	// Ends of the book return empty, not an error.
	if prev, _ := book.Prev("getting-started"); prev != "" {
		t.Errorf("prev at the start: got %q", prev)
	}
	if next, _ := book.Next("errors"); next != "" {
		t.Errorf("next at the end: got %q", next)
	}

	if _, err := book.Next("ghost"); err != domain.ErrChapterNotFound {
		t.Errorf("next of unknown chapter: got %v", err)
	}
}

func TestBook_Chapter(t *testing.T) {
	book, err := primer.New("")
	if err != nil {
		t.Fatal(err)
	}

	ch, err := book.Chapter("concurrency")
	if err != nil {
		t.Fatalf("chapter: %v", err)
	}
	if ch.Meta.Title == "" {
		t.Error("chapter has no title")
	}
	if len(ch.CodeBlocks) == 0 {
		t.Error("concurrency chapter has no code examples")
	}

	if _, err := book.Chapter("ghost"); err != domain.ErrChapterNotFound {
		t.Errorf("unknown chapter: got %v", err)
	}
}

func TestBook_RenderHTMLDeterministic(t *testing.T) {
	book, err := primer.New("")
	if err != nil {
		t.Fatal(err)
	}

	first, err := book.RenderHTML("http-server")
	if err != nil {
		t.Fatal(err)
	}
	second, err := book.RenderHTML("http-server")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same chapter differ")
	}
}

func TestBook_RenderTerm(t *testing.T) {
	// Inject a renderer so the test does not depend on terminal detection.
	var rendered string
	book, err := primer.New("", primer.WithRenderer(func(md string) (string, error) {
		rendered = md
		return "styled:" + md, nil
	}))
	if err != nil {
		t.Fatal(err)
	}

	out, err := book.RenderTerm("modules")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "styled:") {
		t.Errorf("custom renderer not used: %q", out[:20])
	}
	if strings.Contains(rendered, "---\nid:") {
		t.Error("frontmatter leaked into the rendered body")
	}
}

func TestBook_Search(t *testing.T) {
	book, err := primer.New("")
	if err != nil {
		t.Fatal(err)
	}

	matches, err := book.Search("goroutine")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("no matches for a term the book certainly contains")
	}

	found := false
	for _, m := range matches {
		if m.ChapterID == "concurrency" {
			found = true
			if m.Excerpt == "" {
				t.Error("match has no excerpt")
			}
		}
	}
	if !found {
		t.Errorf("concurrency chapter missing from matches: %+v", matches)
	}

	if _, err := book.Search("   "); err == nil {
		t.Error("blank query should be rejected")
	}
}

func TestBook_SearchExcerptRuneSafe(t *testing.T) {
	// Pad the match with multi-byte runes on both sides so the excerpt
	// window lands mid-rune unless edges snap to boundaries.
	body := "---\nid: pad\ntitle: Pad\nweight: 1\n---\n# Pad\n\n" +
		strings.Repeat("é", 60) + " needle " + strings.Repeat("é", 60) + "\n"
	book, err := primer.New("", primer.WithLoader(memory.NewLoader(map[string][]byte{
		"pad": []byte(body),
	})))
	if err != nil {
		t.Fatal(err)
	}

	matches, err := book.Search("needle")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("matches: got %d", len(matches))
	}
	if !utf8.ValidString(matches[0].Excerpt) {
		t.Errorf("excerpt is not valid UTF-8: %q", matches[0].Excerpt)
	}
	if !strings.Contains(matches[0].Excerpt, "needle") {
		t.Errorf("excerpt lost the match: %q", matches[0].Excerpt)
	}
}

func TestBook_RenderTermConcurrent(t *testing.T) {
	// No injected renderer, so the default one must be ready before any
	// goroutine calls RenderTerm.
	book, err := primer.New("")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := book.RenderTerm("modules"); err != nil {
				t.Errorf("render: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestBook_CustomLoader(t *testing.T) {
	loader := memory.NewLoader(map[string][]byte{
		"solo": []byte("---\nid: solo\ntitle: Solo\nweight: 1\n---\n# Solo\n"),
	})

	book, err := primer.New("", primer.WithLoader(loader))
	if err != nil {
		t.Fatal(err)
	}

	raw, err := book.Raw("solo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "# Solo") {
		t.Errorf("raw body: got %q", raw)
	}

	// The memory loader cannot watch.
	if _, err := book.Watch(context.Background()); err == nil {
		t.Error("expected watch to fail for a non-watchable loader")
	}
}

func TestNew_DirectoryBook(t *testing.T) {
	dir := t.TempDir()
	src := []byte("---\nid: only\ntitle: Only\nweight: 1\n---\n# Only\n")
	if err := os.WriteFile(filepath.Join(dir, "only.md"), src, 0o644); err != nil {
		t.Fatal(err)
	}

	book, err := primer.New(dir)
	if err != nil {
		t.Fatalf("open directory book: %v", err)
	}
	if book.Name != filepath.Base(dir) {
		t.Errorf("name: got %q", book.Name)
	}

	// Directory books support watching.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := book.Watch(ctx); err != nil {
		t.Errorf("watch: %v", err)
	}
}

func TestNew_EmptyDirectoryFails(t *testing.T) {
	if _, err := primer.New(t.TempDir()); err == nil {
		t.Error("expected an error for a book with no chapters")
	}
}
