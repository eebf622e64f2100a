package domain

// Match is a search hit inside a chapter body.
type Match struct {
	ChapterID string `json:"chapter_id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Offset    int    `json:"offset"`
}
