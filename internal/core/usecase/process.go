package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/ports"
)

// ProcessDocumentUseCase runs the per-document analysis pipeline: extract
// text, classify the document type, scan for red flags, persist the outcome.
// A failed extraction marks the document failed and excludes it from the
// batch; it never surfaces as an unknown-typed document with empty text.
type ProcessDocumentUseCase struct {
	repo        ports.DocumentRepository
	validations ports.ValidationRepository
	extractor   ports.TextExtractor
	classifier  ports.DocumentClassifier
	scanner     ports.RedFlagScanner
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	validations ports.ValidationRepository,
	extractor ports.TextExtractor,
	classifier ports.DocumentClassifier,
	scanner ports.RedFlagScanner,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:        repo,
		validations: validations,
		extractor:   extractor,
		classifier:  classifier,
		scanner:     scanner,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	if err := uc.analyze(ctx, documentID); err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, err.Error()); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) analyze(ctx context.Context, documentID string) error {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document by id: %w", err)
	}

	extraction, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return domain.WrapError(domain.ErrExtraction, "extract text", err)
	}
	if extraction.Text == "" {
		return domain.WrapError(domain.ErrExtraction, "extract text", errors.New("empty extracted text"))
	}

	doc.DocumentType = uc.classifier.Classify(extraction.Text)
	flags := uc.scanner.Scan(extraction.Text)

	if err := uc.repo.SaveAnalysis(ctx, doc.ID, doc.DocumentType, extraction); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	if err := uc.validations.Save(ctx, domain.NewValidationResult(doc, flags)); err != nil {
		return fmt.Errorf("save validation result: %w", err)
	}
	return nil
}
