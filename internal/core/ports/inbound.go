package ports

import (
	"context"
	"io"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, batchID, filename, mimeType string, body io.Reader) (*domain.Document, error)
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document analysis.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// ReportService builds the compliance report for one uploaded batch.
type ReportService interface {
	BuildReport(ctx context.Context, batchID string) (*domain.ComplianceReport, []string, error)
}

// KnowledgeService answers canned ADGM guidance questions from the static
// knowledge table.
type KnowledgeService interface {
	Ask(ctx context.Context, question string) (*domain.KnowledgeAnswer, error)
}
