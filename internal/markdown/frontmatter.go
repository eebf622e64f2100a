package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/mitchellh/mapstructure"

	"primer/pkg/domain"
)

// metaEnvelope mirrors the YAML frontmatter header of a chapter file.
// The render block stays untyped here and is decoded separately so unknown
// keys are ignored rather than rejected.
type metaEnvelope struct {
	ID      string         `yaml:"id"`
	Title   string         `yaml:"title"`
	Weight  int            `yaml:"weight"`
	Summary string         `yaml:"summary"`
	Render  map[string]any `yaml:"render"`
}

// ParseFrontMatter extracts chapter metadata and returns the Markdown body
// without the frontmatter delimiters.
func ParseFrontMatter(source []byte) (domain.Meta, []byte, error) {
	var env metaEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return domain.Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta := domain.Meta{
		ID:      env.ID,
		Title:   env.Title,
		Weight:  env.Weight,
		Summary: env.Summary,
	}

	if len(env.Render) > 0 {
		if err := mapstructure.Decode(env.Render, &meta.Render); err != nil {
			return domain.Meta{}, nil, fmt.Errorf("decode render options: %w", err)
		}
	}

	return meta, body, nil
}
