package httpadapter

import (
	"fmt"
	"strings"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

const maxListedMissing = 3

// statusMessage renders the one-line verdict shown to reviewers alongside the
// structured report. The missing-documents list is truncated to the first
// three entries, in requirement order.
func statusMessage(report *domain.ComplianceReport, catalog *analysis.Catalog) string {
	var b strings.Builder

	switch report.OverallStatus {
	case domain.StatusReadyForSubmission:
		b.WriteString("✅ Ready for submission")
	case domain.StatusRequiresAttention:
		b.WriteString("⚠️ Requires attention")
	case domain.StatusMajorIssues:
		b.WriteString("❌ Major issues found")
	case domain.StatusIncomplete:
		b.WriteString("📋 Incomplete documentation")
	default:
		b.WriteString(string(report.OverallStatus))
	}

	fmt.Fprintf(&b, " | %s at %.0f%% completion", report.ProcessName, report.Completeness.CompletionPercentage)

	if report.IssuesSummary.TotalRedFlags > 0 {
		fmt.Fprintf(&b, " | %d issue(s), %d high severity",
			report.IssuesSummary.TotalRedFlags, report.IssuesSummary.HighSeverity)
	}

	missing := report.Completeness.MissingDocuments
	if len(missing) > 0 {
		names := make([]string, 0, maxListedMissing)
		for i, id := range missing {
			if i == maxListedMissing {
				break
			}
			names = append(names, displayName(catalog, id))
		}
		b.WriteString(" | Missing: ")
		b.WriteString(strings.Join(names, ", "))
		if extra := len(missing) - maxListedMissing; extra > 0 {
			fmt.Fprintf(&b, " (and %d more)", extra)
		}
	}

	return b.String()
}

func displayName(catalog *analysis.Catalog, id domain.DocumentType) string {
	if catalog != nil {
		return catalog.DisplayName(id)
	}
	return string(id)
}
