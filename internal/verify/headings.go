package verify

import (
	"fmt"

	"primer/pkg/domain"
)

// HeadingRule checks chapter heading structure: exactly one H1, no skipped
// heading levels, unique anchors, and the title heading preceding every
// fenced code block in document order.
type HeadingRule struct{}

func (HeadingRule) Name() string { return "heading-structure" }

func (r HeadingRule) Check(book *Book) []domain.Finding {
	var findings []domain.Finding

	for _, ch := range book.Chapters {
		findings = append(findings, r.checkChapter(ch)...)
	}
	return findings
}

func (r HeadingRule) checkChapter(ch *domain.Chapter) []domain.Finding {
	var findings []domain.Finding

	h1Count := 0
	prevLevel := 0
	anchors := make(map[string]int)

	for _, s := range ch.Sections {
		if s.Level == 1 {
			h1Count++
		}
		if prevLevel > 0 && s.Level > prevLevel+1 {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityWarning,
				ChapterID: ch.ID,
				Offset:    s.Offset,
				Message:   fmt.Sprintf("heading %q jumps from level %d to %d", s.Title, prevLevel, s.Level),
			})
		}
		prevLevel = s.Level

		if s.Anchor != "" {
			anchors[s.Anchor]++
			if anchors[s.Anchor] == 2 {
				findings = append(findings, domain.Finding{
					Rule:      r.Name(),
					Severity:  domain.SeverityError,
					ChapterID: ch.ID,
					Offset:    s.Offset,
					Message:   fmt.Sprintf("duplicate heading anchor %q", s.Anchor),
				})
			}
		}
	}

	switch {
	case h1Count == 0:
		findings = append(findings, domain.Finding{
			Rule:      r.Name(),
			Severity:  domain.SeverityError,
			ChapterID: ch.ID,
			Message:   "chapter has no title heading",
		})
	case h1Count > 1:
		findings = append(findings, domain.Finding{
			Rule:      r.Name(),
			Severity:  domain.SeverityError,
			ChapterID: ch.ID,
			Message:   fmt.Sprintf("chapter has %d level-1 headings, want exactly 1", h1Count),
		})
	}

	// Prose order: the title must come before any code example.
	if h1 := ch.Heading(); h1 != nil {
		for _, block := range ch.CodeBlocks {
			if block.Offset < h1.Offset {
				findings = append(findings, domain.Finding{
					Rule:      r.Name(),
					Severity:  domain.SeverityError,
					ChapterID: ch.ID,
					Offset:    block.Offset,
					Message:   "code block appears before the chapter title heading",
				})
			}
		}
	}

	return findings
}
