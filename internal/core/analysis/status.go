package analysis

import "github.com/regtechlab/adgm-corporate-agent/internal/core/domain"

// AggregateStatus folds completeness and red-flag counts into the final batch
// verdict. The rules are ordered and the first match wins: completeness below
// 60% dominates everything, so a batch that is both incomplete and riddled
// with high-severity flags reports incomplete, not major_issues.
func AggregateStatus(completionPct float64, highSeverity, missing int) domain.OverallStatus {
	switch {
	case completionPct < 60:
		return domain.StatusIncomplete
	case highSeverity > 2:
		return domain.StatusMajorIssues
	case highSeverity > 0 || missing > 0:
		return domain.StatusRequiresAttention
	default:
		return domain.StatusReadyForSubmission
	}
}
