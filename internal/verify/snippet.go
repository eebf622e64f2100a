package verify

import (
	"fmt"

	"primer/internal/snippets"
	"primer/pkg/domain"
)

// SnippetRule checks every fenced code block with a registered language tag
// against that language's syntax front end. Blocks with unknown tags are
// skipped; blocks with no tag at all get a warning since they render without
// highlighting.
type SnippetRule struct {
	registry *snippets.Registry
}

// NewSnippetRule builds the rule with the default checker registry.
func NewSnippetRule() SnippetRule {
	return SnippetRule{registry: snippets.NewRegistry()}
}

func (SnippetRule) Name() string { return "snippet-syntax" }

func (r SnippetRule) Check(book *Book) []domain.Finding {
	var findings []domain.Finding

	for _, ch := range book.Chapters {
		for _, block := range ch.CodeBlocks {
			if block.Lang == "" {
				findings = append(findings, domain.Finding{
					Rule:      r.Name(),
					Severity:  domain.SeverityWarning,
					ChapterID: ch.ID,
					Offset:    block.Offset,
					Message:   "fenced code block has no language tag",
				})
				continue
			}
			if !r.registry.Known(block.Lang) {
				continue
			}
			if err := r.registry.Check(block.Lang, block.Body); err != nil {
				findings = append(findings, domain.Finding{
					Rule:      r.Name(),
					Severity:  domain.SeverityError,
					ChapterID: ch.ID,
					Offset:    block.Offset,
					Message:   fmt.Sprintf("%s snippet is not well-formed: %v", block.Lang, err),
				})
			}
		}
	}

	return findings
}
