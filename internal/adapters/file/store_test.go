package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"primer/pkg/domain"
	"primer/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunStateStoreContract(t, New(t.TempDir()))
}

func TestStore_DefaultBasePath(t *testing.T) {
	store := New("")
	if store.BasePath != filepath.Join(".primer", "sessions") {
		t.Errorf("default base path: got %q", store.BasePath)
	}
}

func TestStore_EmptySessionID(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if err := store.Save(ctx, "", domain.NewState("intro")); err == nil {
		t.Error("save with empty session ID should fail")
	}
	if _, err := store.Load(ctx, ""); err == nil {
		t.Error("load with empty session ID should fail")
	}
	if err := store.Delete(ctx, ""); err == nil {
		t.Error("delete with empty session ID should fail")
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Save(ctx, "reader", domain.NewState("intro")); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "tmp-") {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one session file, found %d entries", len(entries))
	}
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(context.Background(), "broken"); err == nil {
		t.Error("expected an error loading a corrupt session file")
	}
}
