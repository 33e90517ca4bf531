package localfs

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := s.Save(ctx, "doc-1_file.txt", strings.NewReader("content")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	r, err := s.Open(ctx, "doc-1_file.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "content" {
		t.Errorf("content = %q, want content", raw)
	}
}

func TestKeysCannotEscapeBaseDirectory(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := s.Save(ctx, "../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The traversal component is stripped; the file is only reachable
	// under its base name inside the store.
	if _, err := s.Open(ctx, "escape.txt"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
}

func TestOpenMissingKeyFails(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := s.Open(context.Background(), "absent"); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
