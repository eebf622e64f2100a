package ports

import "context"

// ChapterLoader defines how the engine retrieves raw chapter sources.
// Loaders return bytes; the markdown compiler owns parsing, so storage
// backends (embedded FS, directory, memory) stay interchangeable.
type ChapterLoader interface {
	// Get retrieves the raw Markdown source of a chapter by ID.
	// Returns domain.ErrChapterNotFound if the chapter does not exist.
	Get(id string) ([]byte, error)

	// List returns the IDs of all chapters available in the book.
	List() ([]string, error)
}

// Watchable is implemented by loaders that can notify about backend changes,
// typically for hot-reload during authoring.
type Watchable interface {
	// Watch returns a channel signaled whenever the underlying book changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
