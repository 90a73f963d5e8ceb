package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by Backend.Get when no session is persisted.
var ErrNotFound = errors.New("session not found")

// Backend is the durable key-value capability behind a Store: one key,
// one blob. Implementations must make Delete idempotent.
type Backend interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

/*
====================================
MEMORY BACKEND
====================================
*/

// MemoryBackend keeps the blob in process memory. Sessions do not
// survive a restart; intended for tests and ephemeral "don't remember
// me" sessions.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Get returns the stored blob or ErrNotFound.
func (b *MemoryBackend) Get(context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b.data...), nil
}

// Put stores a copy of data.
func (b *MemoryBackend) Put(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}

// Delete removes the blob. Deleting an absent blob is a no-op.
func (b *MemoryBackend) Delete(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	return nil
}

/*
====================================
FILE BACKEND
====================================
*/

// FileBackend persists the blob as a single JSON file, the desktop/CLI
// analog of the browser's localStorage key. Writes go through a temp
// file and rename so a crash mid-write cannot leave a torn session.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend persisting to path. Parent
// directories are created on first Put.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the file the session is persisted to.
func (b *FileBackend) Path() string { return b.path }

// Get reads the persisted file, mapping absence to ErrNotFound.
func (b *FileBackend) Get(context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put atomically replaces the persisted file, mode 0600.
func (b *FileBackend) Put(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, b.path)
}

// Delete removes the persisted file. Removing an absent file is a no-op.
func (b *FileBackend) Delete(context.Context) error {
	err := os.Remove(b.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
