package extractor

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

type storageFake struct {
	data map[string][]byte
}

func (f *storageFake) Save(_ context.Context, key string, data io.Reader) error {
	raw, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = raw
	return nil
}

func (f *storageFake) Open(_ context.Context, key string) (io.ReadCloser, error) {
	raw, ok := f.data[key]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}

type upperFormat struct{}

func (upperFormat) Parse(raw []byte) (domain.Extraction, error) {
	text := strings.ToUpper(string(raw))
	return domain.Extraction{Text: text, WordCount: WordCount(text)}, nil
}

func TestExtractDispatchesByExtension(t *testing.T) {
	storage := &storageFake{data: map[string][]byte{"doc-1_a.txt": []byte("hello world")}}
	d := NewDispatcher(storage, map[string]Format{".txt": upperFormat{}})

	extraction, err := d.Extract(context.Background(), &domain.Document{
		Filename:    "a.txt",
		StoragePath: "doc-1_a.txt",
	})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if extraction.Text != "HELLO WORLD" {
		t.Errorf("Text = %q, want HELLO WORLD", extraction.Text)
	}
	if extraction.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", extraction.WordCount)
	}
}

func TestExtractExtensionIsCaseInsensitive(t *testing.T) {
	storage := &storageFake{data: map[string][]byte{"doc-1_A.TXT": []byte("x")}}
	d := NewDispatcher(storage, map[string]Format{".txt": upperFormat{}})

	if _, err := d.Extract(context.Background(), &domain.Document{
		Filename:    "A.TXT",
		StoragePath: "doc-1_A.TXT",
	}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	d := NewDispatcher(&storageFake{}, map[string]Format{".txt": upperFormat{}})

	_, err := d.Extract(context.Background(), &domain.Document{
		Filename:    "slides.pptx",
		StoragePath: "doc-1_slides.pptx",
	})
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported document format") {
		t.Errorf("error = %v, want unsupported-format message", err)
	}
}

func TestExtractPropagatesStorageFailure(t *testing.T) {
	d := NewDispatcher(&storageFake{}, map[string]Format{".txt": upperFormat{}})

	_, err := d.Extract(context.Background(), &domain.Document{
		Filename:    "a.txt",
		StoragePath: "missing-key",
	})
	if err == nil {
		t.Fatalf("expected error when storage open fails")
	}
}
