package verify

import (
	"fmt"

	"primer/pkg/domain"
)

// MetaRule checks chapter frontmatter: a title is required, a declared id
// must match the file-derived one, and reading order must be unambiguous.
type MetaRule struct{}

func (MetaRule) Name() string { return "meta" }

func (r MetaRule) Check(book *Book) []domain.Finding {
	var findings []domain.Finding

	weights := make(map[int]string)

	for _, ch := range book.Chapters {
		if ch.Meta.Title == "" {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: ch.ID,
				Message:   "frontmatter is missing a title",
			})
		}
		if ch.Meta.ID != "" && ch.Meta.ID != ch.ID {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: ch.ID,
				Message:   fmt.Sprintf("frontmatter id %q does not match file id %q", ch.Meta.ID, ch.ID),
			})
		}

		if ch.ID == domain.IndexChapterID {
			continue
		}
		if prev, taken := weights[ch.Meta.Weight]; taken {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityWarning,
				ChapterID: ch.ID,
				Message:   fmt.Sprintf("weight %d is shared with chapter %q; reading order is ambiguous", ch.Meta.Weight, prev),
			})
		}
		weights[ch.Meta.Weight] = ch.ID
	}

	return findings
}
