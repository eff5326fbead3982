package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/telcoin-wiki/sitesearch/internal/content"
)

// Snapshot file names inside the data directory.
const (
	PagesFile = "pages.json"
	FaqFile   = "faq.json"
)

// ContentStore persists the last successfully fetched feeds so the
// service can come up with search content when the origin is unreachable.
// The index itself is never persisted, only its raw inputs.
type ContentStore interface {
	SavePages(pages []content.PageRecord) error
	SaveFaqs(faqs []content.FaqRecord) error
	LoadPages() ([]content.PageRecord, error)
	LoadFaqs() ([]content.FaqRecord, error)
	Dir() string
	Close() error
}

// FileStore implements ContentStore on the local file system
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates the data directory if needed
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// SavePages writes the page feed snapshot
func (fs *FileStore) SavePages(pages []content.PageRecord) error {
	return fs.save(PagesFile, pages)
}

// SaveFaqs writes the FAQ feed snapshot
func (fs *FileStore) SaveFaqs(faqs []content.FaqRecord) error {
	return fs.save(FaqFile, faqs)
}

// LoadPages reads the page feed snapshot. A missing file is an error the
// caller treats as "no snapshot".
func (fs *FileStore) LoadPages() ([]content.PageRecord, error) {
	var pages []content.PageRecord
	if err := fs.load(PagesFile, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// LoadFaqs reads the FAQ feed snapshot
func (fs *FileStore) LoadFaqs() ([]content.FaqRecord, error) {
	var faqs []content.FaqRecord
	if err := fs.load(FaqFile, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// Dir exposes the snapshot directory, mainly for the change watcher
func (fs *FileStore) Dir() string {
	return fs.baseDir
}

// Close is a no-op for file storage
func (fs *FileStore) Close() error {
	return nil
}

func (fs *FileStore) save(name string, v any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := filepath.Join(fs.baseDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (fs *FileStore) load(name string, v any) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(fs.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return nil
}
