// Package docx extracts text from OOXML word-processing files: the document
// is a zip archive whose body lives in word/document.xml.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor"
)

type Format struct{}

func New() *Format {
	return &Format{}
}

func (f *Format) Parse(raw []byte) (domain.Extraction, error) {
	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("open docx archive: %w", err)
	}

	body, err := archive.Open("word/document.xml")
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("missing word/document.xml: %w", err)
	}
	defer body.Close()

	paragraphs, tables, err := walkDocument(body)
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("decode document xml: %w", err)
	}

	text := strings.Join(paragraphs, "\n")
	return domain.Extraction{
		Text:           text,
		WordCount:      extractor.WordCount(text),
		ParagraphCount: len(paragraphs),
		TableCount:     tables,
	}, nil
}

// walkDocument streams the XML once, collecting non-empty paragraph text and
// counting top-level table elements.
func walkDocument(r io.Reader) ([]string, int, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	tables := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tables++
			case "t":
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, 0, err
				}
				current.WriteString(text)
			case "tab":
				current.WriteString("\t")
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				if para := strings.TrimSpace(current.String()); para != "" {
					paragraphs = append(paragraphs, para)
				}
				current.Reset()
			}
		}
	}

	return paragraphs, tables, nil
}
