// Package extractor turns stored source files into plain text plus the
// structural counts (words, paragraphs, tables) the reports carry as
// metadata. Formats are selected by filename extension; anything the
// dispatcher cannot handle is a per-document extraction failure, not a batch
// failure.
package extractor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/ports"
)

// Format parses one source file format out of its raw bytes.
type Format interface {
	Parse(raw []byte) (domain.Extraction, error)
}

type Dispatcher struct {
	storage ports.ObjectStorage
	formats map[string]Format
}

func NewDispatcher(storage ports.ObjectStorage, formats map[string]Format) *Dispatcher {
	return &Dispatcher{storage: storage, formats: formats}
}

func (d *Dispatcher) Extract(ctx context.Context, doc *domain.Document) (domain.Extraction, error) {
	ext := strings.ToLower(filepath.Ext(doc.Filename))
	format, ok := d.formats[ext]
	if !ok {
		return domain.Extraction{}, fmt.Errorf("unsupported document format %q: %s", ext, doc.Filename)
	}

	reader, err := d.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("read source document: %w", err)
	}

	extraction, err := format.Parse(raw)
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("parse %s document: %w", ext, err)
	}
	return extraction, nil
}

// WordCount is shared by the format parsers.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
