package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// DocumentType identifies a recognized ADGM document category. The concrete
// enumeration is declared by the pattern catalog; TypeUnknown is the only
// value the core itself reserves.
type DocumentType string

const TypeUnknown DocumentType = "unknown"

type Document struct {
	ID             string         `json:"id"`
	BatchID        string         `json:"batch_id"`
	Filename       string         `json:"filename"`
	MimeType       string         `json:"mime_type"`
	StoragePath    string         `json:"storage_path"`
	DocumentType   DocumentType   `json:"document_type,omitempty"`
	WordCount      int            `json:"word_count,omitempty"`
	ParagraphCount int            `json:"paragraph_count,omitempty"`
	TableCount     int            `json:"table_count,omitempty"`
	Status         DocumentStatus `json:"status"`
	Error          string         `json:"error,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Extraction is what the text-extraction collaborator produces for one stored
// document. Counts are pass-through metadata; only Text feeds the analysis.
type Extraction struct {
	Text           string
	WordCount      int
	ParagraphCount int
	TableCount     int
}
