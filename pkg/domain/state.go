package domain

// State is the durable reading progress of a single session.
// It is plain data so every StateStore can serialize it as JSON.
type State struct {
	CurrentChapterID string         `json:"current_chapter_id"`
	History          []string       `json:"history"`
	Completed        bool           `json:"completed"`
	Context          map[string]any `json:"context,omitempty"`
}

// NewState creates a fresh session positioned at the given chapter.
func NewState(chapterID string) *State {
	return &State{
		CurrentChapterID: chapterID,
		History:          []string{chapterID},
		Context:          make(map[string]any),
	}
}

// Advance moves the session to the next chapter and records the visit.
func (s *State) Advance(chapterID string) {
	s.CurrentChapterID = chapterID
	s.History = append(s.History, chapterID)
}

// Visited reports whether the session has already read the given chapter.
func (s *State) Visited(chapterID string) bool {
	for _, id := range s.History {
		if id == chapterID {
			return true
		}
	}
	return false
}
