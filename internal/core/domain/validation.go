package domain

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// RedFlag is one detected compliance issue. Value object, never mutated.
type RedFlag struct {
	Category   string   `json:"category"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

type ValidationStatus string

const (
	ValidationCompliant         ValidationStatus = "compliant"
	ValidationRequiresAttention ValidationStatus = "requires_attention"
)

// ValidationResult holds the scan outcome for a single document. RedFlags keep
// rule evaluation order; report truncation downstream depends on it.
type ValidationResult struct {
	DocumentID    string           `json:"document_id"`
	DocumentName  string           `json:"document_name"`
	DocumentType  DocumentType     `json:"document_type"`
	RedFlags      []RedFlag        `json:"red_flags"`
	OverallStatus ValidationStatus `json:"overall_status"`
}

// NewValidationResult derives the per-document status from the flag list:
// requires_attention iff any flag was raised.
func NewValidationResult(doc *Document, flags []RedFlag) ValidationResult {
	status := ValidationCompliant
	if len(flags) > 0 {
		status = ValidationRequiresAttention
	}
	if flags == nil {
		flags = []RedFlag{}
	}
	return ValidationResult{
		DocumentID:    doc.ID,
		DocumentName:  doc.Filename,
		DocumentType:  doc.DocumentType,
		RedFlags:      flags,
		OverallStatus: status,
	}
}

// HighSeverityCount counts high-severity flags across a set of validations.
func HighSeverityCount(validations []ValidationResult) int {
	n := 0
	for _, v := range validations {
		for _, flag := range v.RedFlags {
			if flag.Severity == SeverityHigh {
				n++
			}
		}
	}
	return n
}

// TotalRedFlags counts all flags across a set of validations.
func TotalRedFlags(validations []ValidationResult) int {
	n := 0
	for _, v := range validations {
		n += len(v.RedFlags)
	}
	return n
}
