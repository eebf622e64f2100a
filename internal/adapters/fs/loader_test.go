package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"primer/pkg/ports"
)

func TestLoader_Contract(t *testing.T) {
	seed := map[string][]byte{
		"index":   []byte("---\nid: index\ntitle: Index\n---\n# Index\n"),
		"modules": []byte("---\nid: modules\ntitle: Modules\n---\n# Modules\n"),
	}

	fsys := fstest.MapFS{}
	for id, src := range seed {
		fsys[id+".md"] = &fstest.MapFile{Data: src}
	}
	// Non-chapter files are invisible to the loader.
	fsys["notes.txt"] = &fstest.MapFile{Data: []byte("scratch")}

	ports.RunChapterLoaderContract(t, New(fsys), seed)
}

func TestLoader_ListSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"zz.md": &fstest.MapFile{Data: []byte("z")},
		"aa.md": &fstest.MapFile{Data: []byte("a")},
		"mm.md": &fstest.MapFile{Data: []byte("m")},
	}

	ids, err := New(fsys).List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"aa", "mm", "zz"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("list not sorted: got %v, want %v", ids, want)
		}
	}
}

func TestDirLoader_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ch.md")
	if err := os.WriteFile(path, []byte("# One"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewDir(dir)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := loader.Watch(ctx)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	// A burst of writes should coalesce into at least one signal.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("# Two"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal within 2s")
	}
}

func TestDirLoader_WatchStopsOnCancel(t *testing.T) {
	loader := NewDir(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())

	events, err := loader.Watch(ctx)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected channel close, got an event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestDirLoader_ChapterPath(t *testing.T) {
	loader := NewDir("/tmp/book")
	if got := loader.ChapterPath("intro"); got != "/tmp/book/intro.md" {
		t.Errorf("chapter path: got %q", got)
	}
}
