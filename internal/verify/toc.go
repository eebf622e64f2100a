package verify

import (
	"fmt"
	"strings"

	"primer/pkg/domain"
)

// TOCRule checks referential completeness: every entry in the index chapter's
// table of contents must resolve to an existing chapter that carries a title
// heading, and every non-index chapter must be reachable from the index.
type TOCRule struct{}

func (TOCRule) Name() string { return "toc-complete" }

func (r TOCRule) Check(book *Book) []domain.Finding {
	var findings []domain.Finding

	index := book.Index()
	if index == nil {
		return []domain.Finding{{
			Rule:     r.Name(),
			Severity: domain.SeverityError,
			Message:  "book has no index chapter",
		}}
	}

	listed := make(map[string]bool)

	for _, link := range index.Links {
		target, ok := chapterRef(link.Destination)
		if !ok {
			continue // external URL or in-page anchor, handled by link-format
		}
		listed[target] = true

		ch := book.Chapter(target)
		if ch == nil {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: index.ID,
				Offset:    link.Offset,
				Message:   fmt.Sprintf("table of contents references missing chapter %q", target),
			})
			continue
		}
		if ch.Heading() == nil {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityError,
				ChapterID: ch.ID,
				Message:   fmt.Sprintf("chapter %q is listed in the table of contents but has no title heading", target),
			})
		}
	}

	for _, ch := range book.Chapters {
		if ch.ID == domain.IndexChapterID {
			continue
		}
		if !listed[ch.ID] {
			findings = append(findings, domain.Finding{
				Rule:      r.Name(),
				Severity:  domain.SeverityWarning,
				ChapterID: ch.ID,
				Message:   "chapter is not listed in the table of contents",
			})
		}
	}

	return findings
}

// chapterRef interprets a link destination as an internal chapter reference.
// External URLs (with a scheme) and pure anchors are not chapter refs.
func chapterRef(dest string) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.Contains(dest, "://") ||
		strings.HasPrefix(dest, "mailto:") {
		return "", false
	}
	target := dest
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	target = strings.TrimSuffix(target, domain.ChapterExt)
	target = strings.TrimPrefix(target, "./")
	if target == "" {
		return "", false
	}
	return target, true
}
