// Package pdfx extracts plain text from PDF files.
package pdfx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor"
)

type Format struct{}

func New() *Format {
	return &Format{}
}

func (f *Format) Parse(raw []byte) (domain.Extraction, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return domain.Extraction{}, fmt.Errorf("read pdf text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	return domain.Extraction{
		Text:           text,
		WordCount:      extractor.WordCount(text),
		ParagraphCount: countParagraphs(text),
	}, nil
}

func countParagraphs(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
