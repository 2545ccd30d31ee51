package docs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Varun9213/nextflow-chat-bot/internal/adapters/docs"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestNewLoadsRecognizedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "install.md", "Install Nextflow via conda.")
	writeFile(t, dir, "notes.txt", "plain notes")
	writeFile(t, dir, "manifest.mf", "manifest content")
	writeFile(t, dir, "image.png", "not text")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "nested"), "inner.md", "must not be loaded")

	store, err := docs.New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("expected 3 docs, got %d", store.Len())
	}

	// ReadDir returns sorted names, so the order is fixed.
	wantTitles := []string{"install.md", "manifest.mf", "notes.txt"}
	for i, doc := range store.Docs() {
		if doc.Title != wantTitles[i] {
			t.Fatalf("expected doc %d to be %s, got %s", i, wantTitles[i], doc.Title)
		}
	}

	if store.Docs()[0].Text != "Install Nextflow via conda." {
		t.Fatalf("unexpected text: %q", store.Docs()[0].Text)
	}
}

func TestNewMissingDirIsEmptyStore(t *testing.T) {
	store, err := docs.New(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d docs", store.Len())
	}
}
