// Package graph renders the book's reading order as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"primer/pkg/domain"
)

// Overlay marks dynamic reading state on the chart.
type Overlay struct {
	VisitedChapters []string
	CurrentChapter  string
}

// GenerateMermaid produces Mermaid flowchart syntax for the table of
// contents. The index is drawn as a circle, chapters as rectangles chained in
// reading order. Overlay styling highlights visited and current chapters.
func GenerateMermaid(toc []domain.TOCEntry, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", sanitizeID(domain.IndexChapterID), "contents"))

	prev := sanitizeID(domain.IndexChapterID)
	for _, entry := range toc {
		id := sanitizeID(entry.ChapterID)
		label := strings.ReplaceAll(entry.Title, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, id))
		prev = id
	}

	if overlay != nil {
		for _, visited := range overlay.VisitedChapters {
			sb.WriteString(fmt.Sprintf("    style %s fill:#dcfce7,stroke:#16a34a\n", sanitizeID(visited)))
		}
		if overlay.CurrentChapter != "" {
			sb.WriteString(fmt.Sprintf("    style %s fill:#dbeafe,stroke:#2563eb,stroke-width:2px\n",
				sanitizeID(overlay.CurrentChapter)))
		}
	}

	return sb.String()
}

// sanitizeID makes a chapter ID safe for use as a Mermaid node identifier.
func sanitizeID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
