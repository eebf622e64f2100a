package verify

import (
	"fmt"
	"net/url"
	"strings"

	"primer/pkg/domain"
)

// LinkRule checks that every link destination is usable: external URLs must
// be well-formed with a scheme and host, in-page anchors must resolve to a
// heading in the same chapter, and cross-chapter references must resolve to
// an existing chapter (and anchor, if given).
type LinkRule struct{}

func (LinkRule) Name() string { return "link-format" }

func (r LinkRule) Check(book *Book) []domain.Finding {
	var findings []domain.Finding

	for _, ch := range book.Chapters {
		for _, link := range ch.Links {
			if f := r.checkLink(book, ch, link); f != nil {
				findings = append(findings, *f)
			}
		}
	}
	return findings
}

func (r LinkRule) checkLink(book *Book, ch *domain.Chapter, link domain.Link) *domain.Finding {
	dest := link.Destination

	if dest == "" {
		return r.finding(ch, link, "empty link destination")
	}

	// In-page anchor.
	if strings.HasPrefix(dest, "#") {
		anchor := strings.TrimPrefix(dest, "#")
		if !ch.Anchors()[anchor] {
			return r.finding(ch, link, fmt.Sprintf("anchor %q does not resolve to a heading", dest))
		}
		return nil
	}

	// External URL.
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		u, err := url.Parse(dest)
		if err != nil {
			return r.finding(ch, link, fmt.Sprintf("malformed URL %q: %v", dest, err))
		}
		if u.Scheme == "mailto" {
			return nil
		}
		if u.Scheme == "" || u.Host == "" {
			return r.finding(ch, link, fmt.Sprintf("URL %q is missing scheme or host", dest))
		}
		return nil
	}

	// Cross-chapter reference, optionally with an anchor.
	target, ok := chapterRef(dest)
	if !ok {
		return r.finding(ch, link, fmt.Sprintf("unrecognized link destination %q", dest))
	}
	other := book.Chapter(target)
	if other == nil {
		return r.finding(ch, link, fmt.Sprintf("link target chapter %q does not exist", target))
	}
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		anchor := dest[i+1:]
		if !other.Anchors()[anchor] {
			return r.finding(ch, link, fmt.Sprintf("anchor %q not found in chapter %q", anchor, target))
		}
	}
	return nil
}

func (r LinkRule) finding(ch *domain.Chapter, link domain.Link, msg string) *domain.Finding {
	return &domain.Finding{
		Rule:      r.Name(),
		Severity:  domain.SeverityError,
		ChapterID: ch.ID,
		Offset:    link.Offset,
		Message:   msg,
	}
}
