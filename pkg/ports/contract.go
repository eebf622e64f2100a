package ports

import (
	"context"
	"testing"

	"primer/pkg/domain"
)

// RunStateStoreContract verifies that a StateStore implementation honors the
// interface semantics. Adapters call this from their own tests so every
// backend (memory, file, redis) is held to the same behavior.
func RunStateStoreContract(t *testing.T, store StateStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-session")
		if err != domain.ErrSessionNotFound {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		state := domain.NewState("modules")
		state.Advance("concurrency")
		state.Context["notes"] = "left off at channels"

		if err := store.Save(ctx, "reader-1", state); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "reader-1")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.CurrentChapterID != "concurrency" {
			t.Errorf("current chapter: got %q, want %q", loaded.CurrentChapterID, "concurrency")
		}
		if len(loaded.History) != 2 {
			t.Errorf("history length: got %d, want 2", len(loaded.History))
		}
	})

	t.Run("Save_IsolatedFromCaller", func(t *testing.T) {
		state := domain.NewState("intro")
		if err := store.Save(ctx, "reader-2", state); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		// Mutating the caller's copy must not leak into the store.
		state.Advance("filesystem")

		loaded, err := store.Load(ctx, "reader-2")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.CurrentChapterID != "intro" {
			t.Errorf("store state mutated through caller pointer: got %q", loaded.CurrentChapterID)
		}
	})

	t.Run("List", func(t *testing.T) {
		sessions, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		lookup := make(map[string]bool, len(sessions))
		for _, id := range sessions {
			lookup[id] = true
		}
		for _, want := range []string{"reader-1", "reader-2"} {
			if !lookup[want] {
				t.Errorf("session %s missing from list", want)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "reader-1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "reader-1"); err != domain.ErrSessionNotFound {
			t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
		}
		// Deleting a missing session is not an error.
		if err := store.Delete(ctx, "reader-1"); err != nil {
			t.Fatalf("second delete failed: %v", err)
		}
	})
}

// RunChapterLoaderContract verifies that a ChapterLoader serves exactly the
// seeded chapters.
func RunChapterLoaderContract(t *testing.T, loader ChapterLoader, seed map[string][]byte) {
	t.Helper()

	t.Run("Get_Success", func(t *testing.T) {
		for id, want := range seed {
			got, err := loader.Get(id)
			if err != nil {
				t.Fatalf("unexpected error getting chapter %s: %v", id, err)
			}
			if string(got) != string(want) {
				t.Errorf("content mismatch for %s", id)
			}
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := loader.Get("no-such-chapter")
		if err != domain.ErrChapterNotFound {
			t.Errorf("expected ErrChapterNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := loader.List()
		if err != nil {
			t.Fatalf("unexpected error listing chapters: %v", err)
		}
		if len(ids) != len(seed) {
			t.Errorf("expected %d chapters, got %d", len(seed), len(ids))
		}
		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for id := range seed {
			if !lookup[id] {
				t.Errorf("chapter %s missing from list", id)
			}
		}
	})
}
