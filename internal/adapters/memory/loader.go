package memory

import (
	"sort"
	"sync"

	"primer/pkg/domain"
)

// Loader serves chapters from an in-memory map. Used by tests and embedded
// scenarios where no filesystem is involved.
type Loader struct {
	mu       sync.RWMutex
	chapters map[string][]byte
}

// NewLoader creates a loader seeded with the given chapters (ID -> raw source).
func NewLoader(chapters map[string][]byte) *Loader {
	data := make(map[string][]byte, len(chapters))
	for id, src := range chapters {
		data[id] = append([]byte(nil), src...)
	}
	return &Loader{chapters: data}
}

// Get retrieves the raw chapter source.
func (l *Loader) Get(id string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	src, ok := l.chapters[id]
	if !ok {
		return nil, domain.ErrChapterNotFound
	}
	return append([]byte(nil), src...), nil
}

// List returns all chapter IDs, sorted.
func (l *Loader) List() ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.chapters))
	for id := range l.chapters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Put adds or replaces a chapter.
func (l *Loader) Put(id string, src []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.chapters[id] = append([]byte(nil), src...)
}
