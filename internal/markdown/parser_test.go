package markdown

import (
	"testing"
)

const sampleChapter = `---
id: concurrency
title: Concurrency
weight: 3
summary: Goroutines and channels.
---
# Concurrency

Go programs handle many things at once with goroutines.

## Goroutines

` + "```go" + `
go func() {
	fmt.Println("hello")
}()
` + "```" + `

## Channels

See the [goroutines section](#goroutines) or the
[spec](https://go.dev/ref/spec) for details.
`

func TestParse_StructuralModel(t *testing.T) {
	p := NewParser()

	ch, err := p.Parse("concurrency", []byte(sampleChapter))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if ch.Meta.Title != "Concurrency" {
		t.Errorf("title: got %q, want %q", ch.Meta.Title, "Concurrency")
	}
	if ch.Meta.Weight != 3 {
		t.Errorf("weight: got %d, want 3", ch.Meta.Weight)
	}

	if len(ch.Sections) != 3 {
		t.Fatalf("sections: got %d, want 3 (%+v)", len(ch.Sections), ch.Sections)
	}
	if ch.Sections[0].Level != 1 || ch.Sections[0].Title != "Concurrency" {
		t.Errorf("first section: got %+v", ch.Sections[0])
	}
	if ch.Sections[1].Anchor != "goroutines" {
		t.Errorf("anchor: got %q, want %q", ch.Sections[1].Anchor, "goroutines")
	}

	if len(ch.CodeBlocks) != 1 {
		t.Fatalf("code blocks: got %d, want 1", len(ch.CodeBlocks))
	}
	if ch.CodeBlocks[0].Lang != "go" {
		t.Errorf("code block lang: got %q, want %q", ch.CodeBlocks[0].Lang, "go")
	}

	if len(ch.Links) != 2 {
		t.Fatalf("links: got %d, want 2 (%+v)", len(ch.Links), ch.Links)
	}
	if ch.Links[0].Destination != "#goroutines" {
		t.Errorf("first link: got %q", ch.Links[0].Destination)
	}
}

func TestParse_OffsetsFollowDocumentOrder(t *testing.T) {
	p := NewParser()

	ch, err := p.Parse("concurrency", []byte(sampleChapter))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	h1 := ch.Heading()
	if h1 == nil {
		t.Fatal("expected an H1 section")
	}
	for _, block := range ch.CodeBlocks {
		if block.Offset <= h1.Offset {
			t.Errorf("code block at %d should come after the title at %d", block.Offset, h1.Offset)
		}
	}
}

func TestParse_RenderOptions(t *testing.T) {
	src := []byte(`---
id: notes
title: Notes
weight: 9
render:
  hard_wraps: true
  unsafe: true
  extensions: [table, footnote]
---
# Notes
`)

	p := NewParser()
	ch, err := p.Parse("notes", src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !ch.Meta.Render.HardWraps {
		t.Error("hard_wraps not decoded")
	}
	if !ch.Meta.Render.Unsafe {
		t.Error("unsafe not decoded")
	}
	if len(ch.Meta.Render.Extension) != 2 {
		t.Errorf("extensions: got %v", ch.Meta.Render.Extension)
	}
}

func TestParseFrontMatter_StripsDelimiters(t *testing.T) {
	src := []byte("---\nid: x\ntitle: X\n---\nbody text\n")

	meta, body, err := ParseFrontMatter(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if meta.ID != "x" {
		t.Errorf("id: got %q", meta.ID)
	}
	if string(body) != "body text\n" {
		t.Errorf("body: got %q", string(body))
	}
}

func TestParseFrontMatter_UnknownRenderKeysIgnored(t *testing.T) {
	src := []byte(`---
id: x
title: X
render:
  hard_wraps: true
  some_future_option: 42
---
body
`)

	meta, _, err := ParseFrontMatter(src)
	if err != nil {
		t.Fatalf("unknown render keys must not fail the parse: %v", err)
	}
	if !meta.Render.HardWraps {
		t.Error("known key lost alongside unknown one")
	}
}
