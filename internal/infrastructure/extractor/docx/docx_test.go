package docx

import (
	"archive/zip"
	"bytes"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocument = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Board Resolution</w:t></w:r></w:p>
    <w:p><w:r><w:t>RESOLVED THAT the company</w:t><w:br/><w:t>be incorporated.</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>Director</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
  </w:body>
</w:document>`

func TestParseExtractsParagraphsAndTables(t *testing.T) {
	raw := buildDocx(t, sampleDocument)

	extraction, err := New().Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Whitespace-only paragraph dropped; table cell paragraph counted.
	if extraction.ParagraphCount != 3 {
		t.Errorf("ParagraphCount = %d, want 3", extraction.ParagraphCount)
	}
	if extraction.TableCount != 1 {
		t.Errorf("TableCount = %d, want 1", extraction.TableCount)
	}
	if want := "Board Resolution"; !bytes.Contains([]byte(extraction.Text), []byte(want)) {
		t.Errorf("Text missing %q:\n%s", want, extraction.Text)
	}
	if extraction.WordCount == 0 {
		t.Errorf("WordCount = 0, want > 0")
	}
}

func TestParseRejectsNonZipInput(t *testing.T) {
	if _, err := New().Parse([]byte("plain text, not a zip")); err == nil {
		t.Fatalf("expected error for non-zip input")
	}
}

func TestParseRejectsArchiveWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("other.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte("<x/>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := New().Parse(buf.Bytes()); err == nil {
		t.Fatalf("expected error for archive without word/document.xml")
	}
}
