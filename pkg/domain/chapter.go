package domain

// Meta is the frontmatter header of a chapter file.
type Meta struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Weight  int    `yaml:"weight" json:"weight"`
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Render carries per-chapter rendering overrides (raw frontmatter map,
	// decoded into RenderOptions by the parser).
	Render RenderOptions `yaml:"-" json:"render,omitempty"`
}

// RenderOptions controls how a chapter body is turned into HTML.
type RenderOptions struct {
	HardWraps bool     `mapstructure:"hard_wraps" json:"hard_wraps,omitempty"`
	Unsafe    bool     `mapstructure:"unsafe" json:"unsafe,omitempty"`
	Extension []string `mapstructure:"extensions" json:"extensions,omitempty"`
}

// Section is a heading in a chapter, positioned by byte offset into the body.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Offset int    `json:"offset"`
}

// CodeBlock is a fenced code example. Lang is the declared info-string tag
// ("go", "bash", ...). Blocks are never executed, only checked.
type CodeBlock struct {
	Lang   string `json:"lang"`
	Body   string `json:"body"`
	Offset int    `json:"offset"`
}

// Link is a link destination found in the chapter body. Internal links start
// with "#" and must resolve to a Section anchor.
type Link struct {
	Destination string `json:"destination"`
	Offset      int    `json:"offset"`
}

// Chapter is the structural model of a single Markdown chapter: the raw body
// plus everything the verifier and the surfaces need to know about it.
type Chapter struct {
	ID         string      `json:"id"`
	Meta       Meta        `json:"meta"`
	Body       []byte      `json:"-"`
	Sections   []Section   `json:"sections"`
	CodeBlocks []CodeBlock `json:"code_blocks"`
	Links      []Link      `json:"links"`
}

// Heading returns the chapter's H1 section, or nil if none exists.
func (c *Chapter) Heading() *Section {
	for i := range c.Sections {
		if c.Sections[i].Level == 1 {
			return &c.Sections[i]
		}
	}
	return nil
}

// Anchors returns the set of heading anchors defined in the chapter.
func (c *Chapter) Anchors() map[string]bool {
	out := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		out[s.Anchor] = true
	}
	return out
}

// TOCEntry is one row of the book's table of contents.
type TOCEntry struct {
	ChapterID string `json:"chapter_id"`
	Title     string `json:"title"`
	Weight    int    `json:"weight"`
}
