package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FileCollection stores a serialized collection in a single flat file,
// rewritten wholesale on every save.
type FileCollection struct {
	path string
}

// NewFileCollection creates a FileCollection backed by the file at path.
// The file is created on first save.
func NewFileCollection(path string) *FileCollection {
	return &FileCollection{path: path}
}

func (c *FileCollection) LoadAll(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		// A collection that was never written is empty, not broken.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	return data, nil
}

func (c *FileCollection) SaveAll(ctx context.Context, data []byte) error {
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// MemCollection is an in-memory Collection used in tests and anywhere a
// durable backing file is not wanted.
type MemCollection struct {
	mu   sync.Mutex
	data []byte
}

// NewMemCollection creates an empty MemCollection.
func NewMemCollection() *MemCollection {
	return &MemCollection{}
}

func (c *MemCollection) LoadAll(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data, nil
}

func (c *MemCollection) SaveAll(ctx context.Context, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	return nil
}

// Bytes returns the current serialized contents. Tests use it to assert on
// what actually hits durable storage.
func (c *MemCollection) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}
