package domain

// OverallStatus is the final coarse verdict for a document batch.
type OverallStatus string

const (
	StatusReadyForSubmission OverallStatus = "ready_for_submission"
	StatusRequiresAttention  OverallStatus = "requires_attention"
	StatusMajorIssues        OverallStatus = "major_issues"
	StatusIncomplete         OverallStatus = "incomplete"
)

// Completeness describes how far a batch satisfies a process checklist.
// PresentDocuments and MissingDocuments keep the requirement list's declared
// order; the status-message formatter truncates MissingDocuments in place.
type Completeness struct {
	DocumentsUploaded    int            `json:"documents_uploaded"`
	RequiredDocuments    int            `json:"required_documents"`
	PresentDocuments     []DocumentType `json:"present_documents"`
	MissingDocuments     []DocumentType `json:"missing_documents"`
	CompletionPercentage float64        `json:"completion_percentage"`
}

type IssuesSummary struct {
	TotalRedFlags int `json:"total_red_flags"`
	HighSeverity  int `json:"high_severity"`
}

// ComplianceReport is the aggregate outcome of one analysis run. Immutable
// once produced; one report per batch.
type ComplianceReport struct {
	ProcessType     string        `json:"process_type"`
	ProcessName     string        `json:"process_name"`
	OverallStatus   OverallStatus `json:"overall_status"`
	Completeness    Completeness  `json:"completeness"`
	IssuesSummary   IssuesSummary `json:"issues_summary"`
	Recommendations []string      `json:"recommendations"`
}
