package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

type ValidationRepository struct {
	db *sql.DB
}

func NewValidationRepository(db *sql.DB) *ValidationRepository {
	return &ValidationRepository{db: db}
}

// Save upserts the scan outcome for a document; reprocessing a document
// replaces its previous result.
func (r *ValidationRepository) Save(ctx context.Context, result domain.ValidationResult) error {
	flagsJSON, err := json.Marshal(result.RedFlags)
	if err != nil {
		return fmt.Errorf("marshal red flags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO validations (document_id, batch_id, document_name, document_type, red_flags, overall_status, created_at)
SELECT $1, d.batch_id, $2, $3, $4, $5, $6 FROM documents d WHERE d.id = $1
ON CONFLICT (document_id) DO UPDATE
SET document_name = EXCLUDED.document_name,
	document_type = EXCLUDED.document_type,
	red_flags = EXCLUDED.red_flags,
	overall_status = EXCLUDED.overall_status,
	created_at = EXCLUDED.created_at
`,
		result.DocumentID, result.DocumentName, string(result.DocumentType),
		flagsJSON, string(result.OverallStatus), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert validation: %w", err)
	}
	return nil
}

func (r *ValidationRepository) GetByDocument(ctx context.Context, documentID string) (*domain.ValidationResult, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT document_id, document_name, document_type, red_flags, overall_status
FROM validations
WHERE document_id = $1
`, documentID)

	result, err := scanValidation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "get validation", fmt.Errorf("document id %s", documentID))
		}
		return nil, err
	}
	return &result, nil
}

func (r *ValidationRepository) ListByBatch(ctx context.Context, batchID string) ([]domain.ValidationResult, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT document_id, document_name, document_type, red_flags, overall_status
FROM validations
WHERE batch_id = $1
ORDER BY created_at, document_id
`, batchID)
	if err != nil {
		return nil, fmt.Errorf("query batch validations: %w", err)
	}
	defer rows.Close()

	var results []domain.ValidationResult
	for rows.Next() {
		result, err := scanValidation(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batch validations: %w", err)
	}
	return results, nil
}

func scanValidation(row rowScanner) (domain.ValidationResult, error) {
	var result domain.ValidationResult
	var docType, status string
	var flagsRaw []byte

	if err := row.Scan(&result.DocumentID, &result.DocumentName, &docType, &flagsRaw, &status); err != nil {
		return domain.ValidationResult{}, fmt.Errorf("scan validation: %w", err)
	}
	if err := json.Unmarshal(flagsRaw, &result.RedFlags); err != nil {
		return domain.ValidationResult{}, fmt.Errorf("unmarshal red flags: %w", err)
	}
	result.DocumentType = domain.DocumentType(docType)
	result.OverallStatus = domain.ValidationStatus(status)
	return result, nil
}
