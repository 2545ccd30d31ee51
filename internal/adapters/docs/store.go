// Package docs loads the documentation corpus into memory at startup.
package docs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
	"github.com/Varun9213/nextflow-chat-bot/internal/observability"
)

// recognized text extensions, fixed allow-list.
var textExtensions = map[string]bool{
	".md":  true,
	".txt": true,
	".mf":  true,
}

// Store holds the corpus read from a directory. Read-only after New.
type Store struct {
	docs []domain.Document
}

// New scans dir non-recursively and reads every recognized text file.
// A missing directory yields an empty store, not an error. Unreadable
// individual files are skipped with a warning; they never fail the load.
// Documents are kept in sorted-filename order, which fixes the enumeration
// order the retriever's tie-breaking depends on.
func New(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{}, nil
		}
		return nil, err
	}

	s := &Store{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !textExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			observability.Logger().Warn("skipping unreadable doc", "file", name, "error", err)
			continue
		}

		s.docs = append(s.docs, domain.Document{
			Title: name,
			Text:  string(content),
		})
	}

	return s, nil
}

// Docs returns the loaded documents in enumeration order. Callers must not
// mutate the returned slice.
func (s *Store) Docs() []domain.Document {
	return s.docs
}

func (s *Store) Len() int {
	return len(s.docs)
}
