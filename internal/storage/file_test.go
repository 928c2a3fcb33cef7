package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/weblarek/storefront/internal/storage"
)

func TestFileStore_SaveLoadRemove(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Save("cartProducts", []byte(`[{"id":"p1"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("cartProducts")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"p1"}]` {
		t.Fatalf("Load = %q", got)
	}

	if err := s.Remove("cartProducts"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Load("cartProducts"); ok {
		t.Fatal("key must be gone after Remove")
	}
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	got, ok, err := s.Load("ghost")
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if ok || got != nil {
		t.Fatalf("Load missing = (%q, %v)", got, ok)
	}
}

func TestFileStore_RemoveMissingKeyIsNoop(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Remove("ghost"); err != nil {
		t.Fatalf("Remove of missing key: %v", err)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	_ = s.Save("k", []byte("old"))
	if err := s.Save("k", []byte("new")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _, _ := s.Load("k")
	if string(got) != "new" {
		t.Fatalf("Load = %q, want new", got)
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		if err := s.Save(key, []byte("x")); err == nil {
			t.Errorf("Save(%q) must fail", key)
		}
	}
}

func TestFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := storage.NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir must exist: %v", err)
	}
}
