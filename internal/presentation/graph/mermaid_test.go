package graph_test

import (
	"strings"
	"testing"

	"primer/internal/presentation/graph"
	"primer/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	toc := []domain.TOCEntry{
		{ChapterID: "getting-started", Title: "Getting Started", Weight: 1},
		{ChapterID: "modules", Title: "Modules & Packages", Weight: 2},
	}

	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Chain From Index",
			contains: []string{
				"graph TD",
				`index(("contents"))`,
				`getting_started["Getting Started"]`,
				"index --> getting_started",
				"getting_started --> modules",
			},
			excludes: []string{"style"},
		},
		{
			name: "Overlay Styling",
			overlay: &graph.Overlay{
				VisitedChapters: []string{"getting-started"},
				CurrentChapter:  "modules",
			},
			contains: []string{
				"style getting_started fill:#dcfce7",
				"style modules fill:#dbeafe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(toc, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("output should not contain %q:\n%s", bad, out)
				}
			}
		})
	}
}

func TestGenerateMermaid_EscapesQuotedTitles(t *testing.T) {
	toc := []domain.TOCEntry{
		{ChapterID: "quotes", Title: `The "Hard" Parts`, Weight: 1},
	}

	out := graph.GenerateMermaid(toc, nil)
	if !strings.Contains(out, `quotes["The 'Hard' Parts"]`) {
		t.Errorf("quotes not escaped:\n%s", out)
	}
}
