package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

type ingestErrFake struct {
	err error
}

func (f ingestErrFake) Upload(context.Context, string, string, string, io.Reader) (*domain.Document, error) {
	return nil, f.err
}

type docsErrFake struct {
	err error
}

func (f docsErrFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Document{ID: "doc-1", BatchID: "batch-1", Filename: "a", MimeType: "text/plain", StoragePath: "a", Status: domain.StatusReady}, nil
}

type reportsErrFake struct {
	err error
}

func (f reportsErrFake) BuildReport(context.Context, string) (*domain.ComplianceReport, []string, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return &domain.ComplianceReport{
		ProcessType:   "general_review",
		ProcessName:   "General Document Review",
		OverallStatus: domain.StatusReadyForSubmission,
		Completeness: domain.Completeness{
			PresentDocuments:     []domain.DocumentType{},
			MissingDocuments:     []domain.DocumentType{},
			CompletionPercentage: 100.0,
		},
	}, []string{"report.json"}, nil
}

type knowledgeErrFake struct {
	err error
}

func (f knowledgeErrFake) Ask(context.Context, string) (*domain.KnowledgeAnswer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.KnowledgeAnswer{Text: "ok"}, nil
}

func TestAskMapsDomainInvalidInputTo400(t *testing.T) {
	handler := NewRouter(
		testConfig(),
		nil,
		docsErrFake{},
		reportsErrFake{},
		knowledgeErrFake{err: domain.WrapError(domain.ErrInvalidInput, "ask", errors.New("empty question"))},
		nil,
		nil,
	).Handler()

	payload, _ := json.Marshal(map[string]any{"question": ""})
	req := httptest.NewRequest(http.MethodPost, "/v1/ask", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestGetDocumentByIDReturns404ForNotFound(t *testing.T) {
	handler := NewRouter(
		testConfig(),
		nil,
		docsErrFake{err: domain.WrapError(domain.ErrDocumentNotFound, "get", errors.New("id=missing"))},
		reportsErrFake{},
		knowledgeErrFake{},
		nil,
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestBatchReportIncludesStatusMessage(t *testing.T) {
	handler := NewRouter(
		testConfig(),
		nil,
		docsErrFake{},
		reportsErrFake{},
		knowledgeErrFake{},
		nil,
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/batches/batch-1/report", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp reportResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.StatusMessage == "" {
		t.Fatalf("expected status message in report response")
	}
	if len(resp.Artifacts) != 1 {
		t.Fatalf("expected artifact paths, got %+v", resp.Artifacts)
	}
}

func TestBatchReportRejectsMalformedPath(t *testing.T) {
	handler := newRouterForIngestTests()

	req := httptest.NewRequest(http.MethodPost, "/v1/batches/batch-1/other", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestUploadMapsTemporaryErrorTo503(t *testing.T) {
	handler := NewRouter(
		testConfig(),
		ingestErrFake{err: domain.WrapError(domain.ErrTemporary, "upload", errors.New("queue down"))},
		docsErrFake{},
		reportsErrFake{},
		knowledgeErrFake{},
		nil,
		nil,
	).Handler()

	var body bytes.Buffer
	writer := newMultipartFile(t, &body, "file.txt", []byte("hello"))

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", &body)
	req.Header.Set("Content-Type", writer)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", res.Code)
	}
}

func newMultipartFile(t *testing.T, body *bytes.Buffer, filename string, content []byte) string {
	t.Helper()
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return writer.FormDataContentType()
}
