package memory

import (
	"testing"

	"primer/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunStateStoreContract(t, NewStore())
}

func TestLoader_Contract(t *testing.T) {
	seed := map[string][]byte{
		"intro":   []byte("---\nid: intro\ntitle: Intro\n---\n# Intro\n"),
		"modules": []byte("---\nid: modules\ntitle: Modules\n---\n# Modules\n"),
	}
	ports.RunChapterLoaderContract(t, NewLoader(seed), seed)
}

func TestLoader_Put(t *testing.T) {
	loader := NewLoader(nil)
	loader.Put("new", []byte("# New"))

	got, err := loader.Get("new")
	if err != nil {
		t.Fatalf("get after put: %v", err)
	}
	if string(got) != "# New" {
		t.Errorf("content: got %q", got)
	}
}

func TestLoader_CopiesOnGet(t *testing.T) {
	loader := NewLoader(map[string][]byte{"ch": []byte("original")})

	first, _ := loader.Get("ch")
	first[0] = 'X'

	second, err := loader.Get("ch")
	if err != nil {
		t.Fatal(err)
	}
	if string(second) != "original" {
		t.Errorf("stored chapter mutated through returned slice: %q", second)
	}
}

func TestStore_ListEmpty(t *testing.T) {
	ids, err := NewStore().List(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty list, got %v", ids)
	}
}

var _ ports.StateStore = (*Store)(nil)
var _ ports.ChapterLoader = (*Loader)(nil)
