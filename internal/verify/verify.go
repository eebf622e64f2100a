// Package verify implements the structural checks a book must pass before it
// ships: the table of contents resolves, code examples parse for their
// declared language, links are well-formed, and rendering is deterministic.
package verify

import (
	"sort"

	"primer/pkg/domain"
)

// Book is the verifier's snapshot of a fully parsed book. Chapters are
// ordered by weight, then ID, matching the reading order.
type Book struct {
	Chapters []*domain.Chapter
}

// NewBook wraps parsed chapters in reading order.
func NewBook(chapters []*domain.Chapter) *Book {
	sorted := make([]*domain.Chapter, len(chapters))
	copy(sorted, chapters)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Meta.Weight != sorted[j].Meta.Weight {
			return sorted[i].Meta.Weight < sorted[j].Meta.Weight
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &Book{Chapters: sorted}
}

// Index returns the table-of-contents chapter, or nil.
func (b *Book) Index() *domain.Chapter {
	return b.Chapter(domain.IndexChapterID)
}

// Chapter looks a chapter up by ID.
func (b *Book) Chapter(id string) *domain.Chapter {
	for _, ch := range b.Chapters {
		if ch.ID == id {
			return ch
		}
	}
	return nil
}

// Rule is a single verification check. Rules report findings; they never
// abort the run.
type Rule interface {
	Name() string
	Check(book *Book) []domain.Finding
}

// DefaultRules returns the standard rule set in reporting order.
func DefaultRules() []Rule {
	return []Rule{
		MetaRule{},
		TOCRule{},
		HeadingRule{},
		NewSnippetRule(),
		LinkRule{},
		StableRule{},
	}
}

// Run executes the rules against the book and returns all findings.
// With no rules given, the default set is used.
func Run(book *Book, rules ...Rule) []domain.Finding {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	var findings []domain.Finding
	for _, rule := range rules {
		findings = append(findings, rule.Check(book)...)
	}
	return findings
}
