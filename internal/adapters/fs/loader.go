// Package fs provides chapter loaders over any fs.FS (including the embedded
// book) and a directory-backed variant that supports hot-reload watching.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"primer/pkg/domain"
)

// Loader serves chapters from an fs.FS. IDs are file names without the .md
// extension, relative to the FS root.
type Loader struct {
	fsys fs.FS
}

// New creates a loader over the given filesystem.
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Get retrieves the raw chapter source.
func (l *Loader) Get(id string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, id+domain.ChapterExt)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrChapterNotFound
		}
		return nil, fmt.Errorf("read chapter %s: %w", id, err)
	}
	return data, nil
}

// List returns all chapter IDs, sorted for stable iteration.
func (l *Loader) List() ([]string, error) {
	var ids []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, domain.ChapterExt) {
			return nil
		}
		ids = append(ids, strings.TrimSuffix(p, domain.ChapterExt))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// DirLoader serves chapters from a directory on disk and can watch it for
// changes. It satisfies both ports.ChapterLoader and ports.Watchable.
type DirLoader struct {
	*Loader
	dir string
}

// NewDir creates a directory-backed loader.
func NewDir(dir string) *DirLoader {
	return &DirLoader{
		Loader: New(os.DirFS(dir)),
		dir:    dir,
	}
}

// Watch emits a signal whenever a chapter file in the directory changes.
// Bursts of filesystem events (editors write, rename, chmod in quick
// succession) are coalesced into a single signal.
func (l *DirLoader) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(l.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", l.dir, err)
	}

	out := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(out)

		const debounce = 100 * time.Millisecond
		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(event.Name, domain.ChapterExt) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
					timerC = timer.C
				} else {
					timer.Reset(debounce)
				}

			case <-timerC:
				timer = nil
				timerC = nil
				select {
				case out <- struct{}{}:
				default:
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

// ChapterPath returns the on-disk path of a chapter, for diagnostics.
func (l *DirLoader) ChapterPath(id string) string {
	return path.Join(l.dir, id+domain.ChapterExt)
}
