// Package plaintext handles UTF-8 text files as-is.
package plaintext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor"
)

type Format struct{}

func New() *Format {
	return &Format{}
}

func (f *Format) Parse(raw []byte) (domain.Extraction, error) {
	if !utf8.Valid(raw) {
		return domain.Extraction{}, fmt.Errorf("file is not valid UTF-8 text")
	}

	text := strings.TrimSpace(string(raw))
	paragraphs := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			paragraphs++
		}
	}

	return domain.Extraction{
		Text:           text,
		WordCount:      extractor.WordCount(text),
		ParagraphCount: paragraphs,
	}, nil
}
