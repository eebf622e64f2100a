package verify

import (
	"bytes"
	"fmt"

	"primer/internal/markdown"
	"primer/pkg/domain"
)

// StableRule renders every chapter twice and requires byte-identical output.
// Chapters are static text with no templated sections, so any divergence
// means nondeterminism crept into the rendering pipeline.
type StableRule struct{}

func (StableRule) Name() string { return "render-stable" }

func (r StableRule) Check(book *Book) []domain.Finding {
	var findings []domain.Finding

	for _, ch := range book.Chapters {
		first, err := markdown.RenderHTML(ch.Body, ch.Meta.Render)
		if err != nil {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: ch.ID,
				Message:   fmt.Sprintf("render failed: %v", err),
			})
			continue
		}
		second, err := markdown.RenderHTML(ch.Body, ch.Meta.Render)
		if err != nil {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: ch.ID,
				Message:   fmt.Sprintf("second render failed: %v", err),
			})
			continue
		}
		if !bytes.Equal(first, second) {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: ch.ID,
				Message:   "rendering is not deterministic: two renders differ",
			})
		}
	}
	return findings
}
