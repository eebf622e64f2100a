package markdown

import (
	"bytes"
	"strings"
	"testing"

	"primer/pkg/domain"
)

func TestRenderHTML_Deterministic(t *testing.T) {
	body := []byte("# Title\n\nSome *prose* with a [link](https://go.dev).\n\n```go\npackage main\n```\n")

	first, err := RenderHTML(body, domain.RenderOptions{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := RenderHTML(body, domain.RenderOptions{})
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two renders of the same chapter differ")
	}
}

func TestRenderHTML_AutoHeadingIDs(t *testing.T) {
	out, err := RenderHTML([]byte("## Error Handling\n"), domain.RenderOptions{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), `id="error-handling"`) {
		t.Errorf("expected auto heading id in output, got: %s", out)
	}
}

func TestRenderHTML_Options(t *testing.T) {
	t.Run("HardWraps", func(t *testing.T) {
		body := []byte("line one\nline two\n")

		soft, err := RenderHTML(body, domain.RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		hard, err := RenderHTML(body, domain.RenderOptions{HardWraps: true})
		if err != nil {
			t.Fatal(err)
		}

		if strings.Contains(string(soft), "<br") {
			t.Error("soft wraps produced a line break")
		}
		if !strings.Contains(string(hard), "<br") {
			t.Error("hard wraps produced no line break")
		}
	})

	t.Run("Unsafe", func(t *testing.T) {
		body := []byte("<div>raw</div>\n")

		safe, err := RenderHTML(body, domain.RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		unsafe, err := RenderHTML(body, domain.RenderOptions{Unsafe: true})
		if err != nil {
			t.Fatal(err)
		}

		if strings.Contains(string(safe), "<div>") {
			t.Error("raw HTML leaked through the safe renderer")
		}
		if !strings.Contains(string(unsafe), "<div>") {
			t.Error("unsafe renderer stripped raw HTML")
		}
	})
}

func TestCollectExtensions(t *testing.T) {
	if got := collectExtensions(nil); len(got) != 2 {
		t.Errorf("default extensions: got %d, want 2", len(got))
	}

	// Unknown names and duplicates are dropped.
	got := collectExtensions([]string{"table", "TABLE", "no-such-extension", ""})
	if len(got) != 1 {
		t.Errorf("got %d extensions, want 1 (table deduplicated)", len(got))
	}
}
