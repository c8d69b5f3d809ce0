// Package source abstracts where document content comes from, so the
// analyzer can read from disk in production and from memory in tests.
package source

import (
	"fmt"
	"os"
)

// ContentSource provides document content by path or label.
type ContentSource interface {
	// Read returns the content of the document at path.
	Read(path string) ([]byte, error)
}

// FilesystemSource reads documents from the local filesystem.
type FilesystemSource struct{}

// NewFilesystem creates a source that reads from the filesystem.
func NewFilesystem() *FilesystemSource {
	return &FilesystemSource{}
}

// Read implements ContentSource.
func (f *FilesystemSource) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MemorySource serves documents from an in-memory map, keyed by label.
// Useful for tests and for comparing snippets that never touch disk.
type MemorySource struct {
	docs map[string][]byte
}

// NewMemory creates a source over the given label→content map.
func NewMemory(docs map[string][]byte) *MemorySource {
	return &MemorySource{docs: docs}
}

// Read implements ContentSource.
func (m *MemorySource) Read(path string) ([]byte, error) {
	content, ok := m.docs[path]
	if !ok {
		return nil, fmt.Errorf("no document %q", path)
	}
	return content, nil
}
