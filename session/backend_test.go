package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestBackendContract(t *testing.T) {
	cases := []struct {
		name    string
		backend Backend
	}{
		{"memory", NewMemoryBackend()},
		{"file", NewFileBackend(filepath.Join(t.TempDir(), "sub", "chatapp.json"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := tc.backend.Get(ctx); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on empty backend, got %v", err)
			}

			blob := []byte(`{"_id":"u1"}`)
			if err := tc.backend.Put(ctx, blob); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			got, err := tc.backend.Get(ctx)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != string(blob) {
				t.Fatalf("Get returned %q, want %q", got, blob)
			}

			// Overwrite replaces, not appends.
			blob2 := []byte(`{"_id":"u2"}`)
			if err := tc.backend.Put(ctx, blob2); err != nil {
				t.Fatalf("second Put failed: %v", err)
			}
			got, err = tc.backend.Get(ctx)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != string(blob2) {
				t.Fatalf("Get returned %q, want %q", got, blob2)
			}

			if err := tc.backend.Delete(ctx); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if err := tc.backend.Delete(ctx); err != nil {
				t.Fatalf("Delete must be idempotent, got %v", err)
			}
			if _, err := tc.backend.Get(ctx); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

func TestFileBackendPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatapp.json")
	if got := NewFileBackend(path).Path(); got != path {
		t.Fatalf("Path returned %q, want %q", got, path)
	}
}
