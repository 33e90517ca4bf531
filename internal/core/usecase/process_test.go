package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

func TestProcessByIDSuccess(t *testing.T) {
	repo := &repoFake{doc: &domain.Document{ID: "doc-1", Filename: "res.docx", BatchID: "batch-1"}}
	validations := &validationRepoFake{}
	uc := NewProcessDocumentUseCase(
		repo,
		validations,
		&extractorFake{extraction: domain.Extraction{Text: "resolved that", WordCount: 2, ParagraphCount: 1}},
		&classifierFake{docType: "board_resolution"},
		&scannerFake{},
	)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected 2 status calls, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[0].status != domain.StatusProcessing || repo.statusCalls[1].status != domain.StatusReady {
		t.Fatalf("unexpected status sequence: %+v", repo.statusCalls)
	}
	if repo.savedType != domain.DocumentType("board_resolution") {
		t.Errorf("saved type = %q, want board_resolution", repo.savedType)
	}
	if repo.savedCounts.WordCount != 2 {
		t.Errorf("saved word count = %d, want 2", repo.savedCounts.WordCount)
	}

	if len(validations.saved) != 1 {
		t.Fatalf("expected one validation result, got %d", len(validations.saved))
	}
	result := validations.saved[0]
	if result.OverallStatus != domain.ValidationCompliant {
		t.Errorf("status = %q, want compliant for zero flags", result.OverallStatus)
	}
	if result.RedFlags == nil || len(result.RedFlags) != 0 {
		t.Errorf("RedFlags = %v, want empty non-nil slice", result.RedFlags)
	}
}

func TestProcessByIDRecordsFlagsAsRequiresAttention(t *testing.T) {
	repo := &repoFake{doc: &domain.Document{ID: "doc-1", Filename: "c.docx"}}
	validations := &validationRepoFake{}
	uc := NewProcessDocumentUseCase(
		repo,
		validations,
		&extractorFake{extraction: domain.Extraction{Text: "dubai courts"}},
		&classifierFake{docType: domain.TypeUnknown},
		&scannerFake{flags: []domain.RedFlag{{Category: "jurisdiction_issues", Severity: domain.SeverityHigh}}},
	)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if validations.saved[0].OverallStatus != domain.ValidationRequiresAttention {
		t.Errorf("status = %q, want requires_attention", validations.saved[0].OverallStatus)
	}
}

func TestProcessByIDMarksFailedOnExtractError(t *testing.T) {
	repo := &repoFake{doc: &domain.Document{ID: "doc-1"}}
	uc := NewProcessDocumentUseCase(
		repo,
		&validationRepoFake{},
		&extractorFake{err: errors.New("corrupt zip")},
		&classifierFake{},
		&scannerFake{},
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected processing + failed status updates, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[1].status != domain.StatusFailed {
		t.Fatalf("expected failed status, got %+v", repo.statusCalls[1])
	}
	if repo.statusCalls[1].errMsg == "" {
		t.Fatalf("expected failure message recorded on document")
	}
}

func TestProcessByIDTreatsEmptyTextAsExtractionFailure(t *testing.T) {
	repo := &repoFake{doc: &domain.Document{ID: "doc-1"}}
	uc := NewProcessDocumentUseCase(
		repo,
		&validationRepoFake{},
		&extractorFake{extraction: domain.Extraction{Text: ""}},
		&classifierFake{},
		&scannerFake{},
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected ErrExtraction for empty text, got %v", err)
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected failed status, got %+v", repo.statusCalls)
	}
}

func TestProcessByIDReportsBothErrorsWhenFailMarkFails(t *testing.T) {
	repo := &repoFake{
		doc:           &domain.Document{ID: "doc-1"},
		failStatusErr: errors.New("db down"),
	}
	uc := NewProcessDocumentUseCase(
		repo,
		&validationRepoFake{},
		&extractorFake{err: errors.New("corrupt zip")},
		&classifierFake{},
		&scannerFake{},
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("original extraction error must stay wrapped, got %v", err)
	}
}
