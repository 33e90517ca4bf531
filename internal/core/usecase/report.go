package usecase

import (
	"context"
	"fmt"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/ports"
)

// ReportUseCase assembles the batch-level compliance report from the analyzed
// documents and their validation results, then renders the file artifacts.
// Failed documents are excluded up front, so the aggregation is total over
// partial extraction failures; an empty batch still yields a well-formed
// report.
type ReportUseCase struct {
	repo        ports.DocumentRepository
	validations ports.ValidationRepository
	evaluator   *analysis.Evaluator
	writer      ports.ReportWriter
}

func NewReportUseCase(
	repo ports.DocumentRepository,
	validations ports.ValidationRepository,
	evaluator *analysis.Evaluator,
	writer ports.ReportWriter,
) *ReportUseCase {
	return &ReportUseCase{
		repo:        repo,
		validations: validations,
		evaluator:   evaluator,
		writer:      writer,
	}
}

func (uc *ReportUseCase) BuildReport(ctx context.Context, batchID string) (*domain.ComplianceReport, []string, error) {
	docs, err := uc.repo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, nil, fmt.Errorf("list batch documents: %w", err)
	}

	analyzed := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Status == domain.StatusReady {
			analyzed = append(analyzed, doc)
		}
	}

	validations, err := uc.validations.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, nil, fmt.Errorf("list batch validations: %w", err)
	}

	report := uc.compose(analyzed, validations)

	paths, err := uc.writer.Write(ctx, batchID, report, validations)
	if err != nil {
		return nil, nil, fmt.Errorf("write report artifacts: %w", err)
	}
	return report, paths, nil
}

func (uc *ReportUseCase) compose(docs []domain.Document, validations []domain.ValidationResult) *domain.ComplianceReport {
	observed := make([]domain.DocumentType, 0, len(docs))
	for _, doc := range docs {
		observed = append(observed, doc.DocumentType)
	}

	eval := uc.evaluator.Evaluate(observed)
	high := domain.HighSeverityCount(validations)
	status := analysis.AggregateStatus(eval.CompletionPct, high, len(eval.Missing))

	return &domain.ComplianceReport{
		ProcessType:   eval.Process.ID,
		ProcessName:   eval.Process.Name,
		OverallStatus: status,
		Completeness: domain.Completeness{
			DocumentsUploaded:    len(docs),
			RequiredDocuments:    len(eval.Process.Required),
			PresentDocuments:     eval.Present,
			MissingDocuments:     eval.Missing,
			CompletionPercentage: eval.CompletionPct,
		},
		IssuesSummary: domain.IssuesSummary{
			TotalRedFlags: domain.TotalRedFlags(validations),
			HighSeverity:  high,
		},
		Recommendations: []string{
			"Review flagged issues and make necessary corrections",
			"Ensure all required documents are provided",
			"Verify ADGM compliance before submission",
		},
	}
}
