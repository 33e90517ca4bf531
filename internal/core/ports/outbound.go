package ports

import (
	"context"
	"io"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListByBatch(ctx context.Context, batchID string) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveAnalysis(ctx context.Context, id string, docType domain.DocumentType, extraction domain.Extraction) error
}

// ValidationRepository persists per-document scan results.
type ValidationRepository interface {
	Save(ctx context.Context, result domain.ValidationResult) error
	GetByDocument(ctx context.Context, documentID string) (*domain.ValidationResult, error)
	ListByBatch(ctx context.Context, batchID string) ([]domain.ValidationResult, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes ingestion events.
type MessageQueue interface {
	PublishDocumentIngested(ctx context.Context, documentID string) error
	SubscribeDocumentIngested(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text and structural counts from a stored
// document. Failures are per-document and recoverable: the caller marks the
// document failed and the batch continues without it.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (domain.Extraction, error)
}

// DocumentClassifier resolves extracted text to a document type.
type DocumentClassifier interface {
	Classify(text string) domain.DocumentType
}

// RedFlagScanner runs the red-flag rule table over extracted text.
type RedFlagScanner interface {
	Scan(text string) []domain.RedFlag
}

// ReportWriter renders a finished report into file artifacts and returns
// their paths.
type ReportWriter interface {
	Write(ctx context.Context, batchID string, report *domain.ComplianceReport, validations []domain.ValidationResult) ([]string, error)
}
