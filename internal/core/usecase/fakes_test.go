package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

type statusCall struct {
	status domain.DocumentStatus
	errMsg string
}

type repoFake struct {
	doc           *domain.Document
	batch         []domain.Document
	created       []*domain.Document
	getErr        error
	createErr     error
	listErr       error
	statusErr     error
	failStatusErr error
	saveErr       error
	statusCalls   []statusCall
	savedType     domain.DocumentType
	savedCounts   domain.Extraction
}

func (f *repoFake) Create(_ context.Context, doc *domain.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, doc)
	return nil
}

func (f *repoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyDoc := *f.doc
	return &copyDoc, nil
}

func (f *repoFake) ListByBatch(context.Context, string) ([]domain.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.batch, nil
}

func (f *repoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	if status == domain.StatusFailed && f.failStatusErr != nil {
		return f.failStatusErr
	}
	if f.statusErr != nil {
		return f.statusErr
	}
	return nil
}

func (f *repoFake) SaveAnalysis(_ context.Context, _ string, docType domain.DocumentType, extraction domain.Extraction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedType = docType
	f.savedCounts = extraction
	return nil
}

type validationRepoFake struct {
	saved   []domain.ValidationResult
	results []domain.ValidationResult
	saveErr error
	listErr error
}

func (f *validationRepoFake) Save(_ context.Context, result domain.ValidationResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, result)
	return nil
}

func (f *validationRepoFake) GetByDocument(_ context.Context, documentID string) (*domain.ValidationResult, error) {
	for i := range f.saved {
		if f.saved[i].DocumentID == documentID {
			return &f.saved[i], nil
		}
	}
	return nil, domain.WrapError(domain.ErrDocumentNotFound, "get validation", errors.New(documentID))
}

func (f *validationRepoFake) ListByBatch(context.Context, string) ([]domain.ValidationResult, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.results, nil
}

type storageFake struct {
	savedKeys []string
	saveErr   error
}

func (f *storageFake) Save(_ context.Context, key string, data io.Reader) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	_, _ = io.ReadAll(data)
	f.savedKeys = append(f.savedKeys, key)
	return nil
}

func (f *storageFake) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, io.ErrUnexpectedEOF
}

type queueFake struct {
	published  []string
	publishErr error
}

func (f *queueFake) PublishDocumentIngested(_ context.Context, documentID string) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, documentID)
	return nil
}

func (f *queueFake) SubscribeDocumentIngested(context.Context, func(context.Context, string) error) error {
	return nil
}

type extractorFake struct {
	extraction domain.Extraction
	err        error
}

func (f *extractorFake) Extract(context.Context, *domain.Document) (domain.Extraction, error) {
	if f.err != nil {
		return domain.Extraction{}, f.err
	}
	return f.extraction, nil
}

type classifierFake struct {
	docType domain.DocumentType
}

func (f *classifierFake) Classify(string) domain.DocumentType { return f.docType }

type scannerFake struct {
	flags []domain.RedFlag
}

func (f *scannerFake) Scan(string) []domain.RedFlag { return f.flags }

type writerFake struct {
	paths      []string
	err        error
	lastReport *domain.ComplianceReport
}

func (f *writerFake) Write(_ context.Context, _ string, report *domain.ComplianceReport, _ []domain.ValidationResult) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastReport = report
	return f.paths, nil
}
