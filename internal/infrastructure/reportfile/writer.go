package reportfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// Writer renders a finished compliance report into three artifacts under a
// single output directory: a machine-readable JSON file, a human-readable
// text summary and an XLSX checklist for reviewers.
type Writer struct {
	dir     string
	catalog *analysis.Catalog
	now     func() time.Time
}

func New(dir string, catalog *analysis.Catalog) (*Writer, error) {
	if dir == "" {
		dir = "./data/reports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &Writer{dir: dir, catalog: catalog, now: time.Now}, nil
}

type reportDocument struct {
	Report      *domain.ComplianceReport  `json:"report"`
	Validations []domain.ValidationResult `json:"documents"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

func (w *Writer) Write(ctx context.Context, batchID string, report *domain.ComplianceReport, validations []domain.ValidationResult) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stamp := w.now().UTC().Format("20060102_150405")
	base := fmt.Sprintf("%s_%s", batchID, stamp)

	jsonPath := filepath.Join(w.dir, base+".json")
	if err := w.writeJSON(jsonPath, report, validations); err != nil {
		return nil, err
	}

	textPath := filepath.Join(w.dir, base+".txt")
	if err := w.writeText(textPath, report, validations); err != nil {
		return nil, err
	}

	xlsxPath := filepath.Join(w.dir, base+".xlsx")
	if err := w.writeChecklist(xlsxPath, report, validations); err != nil {
		return nil, err
	}

	return []string{jsonPath, textPath, xlsxPath}, nil
}

func (w *Writer) writeJSON(path string, report *domain.ComplianceReport, validations []domain.ValidationResult) error {
	doc := reportDocument{
		Report:      report,
		Validations: validations,
		GeneratedAt: w.now().UTC(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

func (w *Writer) writeText(path string, report *domain.ComplianceReport, validations []domain.ValidationResult) error {
	var b strings.Builder

	b.WriteString("ADGM COMPLIANCE REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Process: %s\n", report.ProcessName)
	fmt.Fprintf(&b, "Overall status: %s\n", report.OverallStatus)
	fmt.Fprintf(&b, "Completion: %.1f%% (%d of %d required documents)\n\n",
		report.Completeness.CompletionPercentage,
		len(report.Completeness.PresentDocuments),
		report.Completeness.RequiredDocuments,
	)

	if len(report.Completeness.MissingDocuments) > 0 {
		b.WriteString("Missing documents:\n")
		for _, id := range report.Completeness.MissingDocuments {
			fmt.Fprintf(&b, "  - %s\n", w.displayName(id))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Issues: %d total, %d high severity\n\n",
		report.IssuesSummary.TotalRedFlags, report.IssuesSummary.HighSeverity)

	for _, v := range validations {
		fmt.Fprintf(&b, "%s (%s): %s\n", v.DocumentName, w.displayName(v.DocumentType), v.OverallStatus)
		for _, flag := range v.RedFlags {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", flag.Severity, flag.Category, flag.Message)
			if flag.Suggestion != "" {
				fmt.Fprintf(&b, "    Suggestion: %s\n", flag.Suggestion)
			}
		}
	}

	b.WriteString("\nRecommendations:\n")
	for _, rec := range report.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}

func (w *Writer) writeChecklist(path string, report *domain.ComplianceReport, validations []domain.ValidationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const checklist = "Checklist"
	f.SetSheetName("Sheet1", checklist)

	headers := []string{"Document", "Status"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(checklist, cell, h)
	}

	row := 2
	for _, id := range report.Completeness.PresentDocuments {
		f.SetCellValue(checklist, fmt.Sprintf("A%d", row), w.displayName(id))
		f.SetCellValue(checklist, fmt.Sprintf("B%d", row), "present")
		row++
	}
	for _, id := range report.Completeness.MissingDocuments {
		f.SetCellValue(checklist, fmt.Sprintf("A%d", row), w.displayName(id))
		f.SetCellValue(checklist, fmt.Sprintf("B%d", row), "missing")
		row++
	}

	const issues = "Issues"
	if _, err := f.NewSheet(issues); err != nil {
		return fmt.Errorf("add issues sheet: %w", err)
	}
	for col, h := range []string{"Document", "Category", "Severity", "Message", "Suggestion"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(issues, cell, h)
	}
	row = 2
	for _, v := range validations {
		for _, flag := range v.RedFlags {
			f.SetCellValue(issues, fmt.Sprintf("A%d", row), v.DocumentName)
			f.SetCellValue(issues, fmt.Sprintf("B%d", row), flag.Category)
			f.SetCellValue(issues, fmt.Sprintf("C%d", row), string(flag.Severity))
			f.SetCellValue(issues, fmt.Sprintf("D%d", row), flag.Message)
			f.SetCellValue(issues, fmt.Sprintf("E%d", row), flag.Suggestion)
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx checklist: %w", err)
	}
	return nil
}

func (w *Writer) displayName(id domain.DocumentType) string {
	if w.catalog != nil {
		return w.catalog.DisplayName(id)
	}
	return string(id)
}
