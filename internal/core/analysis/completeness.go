package analysis

import "github.com/regtechlab/adgm-corporate-agent/internal/core/domain"

// Evaluation is the completeness outcome for one batch against the selected
// process profile. Present and Missing keep the profile's requirement order.
type Evaluation struct {
	Process       ProcessProfile
	Present       []domain.DocumentType
	Missing       []domain.DocumentType
	CompletionPct float64
}

// Evaluator selects a process profile from the observed document types and
// computes checklist completeness against it.
type Evaluator struct {
	processes []ProcessProfile
}

func NewEvaluator(catalog *Catalog) *Evaluator {
	return &Evaluator{processes: catalog.Processes}
}

// GeneralReviewProfile is the fallback when no process signal fires: no
// checklist, so completeness is trivially 100%.
var GeneralReviewProfile = ProcessProfile{
	ID:   "general_review",
	Name: "General Document Review",
}

// Evaluate inspects the distinct observed types (TypeUnknown ignored) and
// picks the first profile, in declared order, with any signal type present.
// With an empty requirement list, present mirrors the observed set and the
// completion percentage is pinned to 100 to avoid dividing by zero; that is a
// documented fallback, not a completeness claim.
func (e *Evaluator) Evaluate(observed []domain.DocumentType) Evaluation {
	seen := make(map[domain.DocumentType]bool, len(observed))
	for _, t := range observed {
		if t != domain.TypeUnknown && t != "" {
			seen[t] = true
		}
	}

	profile := GeneralReviewProfile
	for _, candidate := range e.processes {
		if anySignal(candidate.Signals, seen) {
			profile = candidate
			break
		}
	}

	if len(profile.Required) == 0 {
		present := make([]domain.DocumentType, 0, len(seen))
		for _, t := range observed {
			if seen[t] {
				present = append(present, t)
				seen[t] = false
			}
		}
		return Evaluation{
			Process:       profile,
			Present:       present,
			Missing:       []domain.DocumentType{},
			CompletionPct: 100.0,
		}
	}

	present := make([]domain.DocumentType, 0, len(profile.Required))
	missing := make([]domain.DocumentType, 0, len(profile.Required))
	for _, required := range profile.Required {
		if seen[required] {
			present = append(present, required)
		} else {
			missing = append(missing, required)
		}
	}

	return Evaluation{
		Process:       profile,
		Present:       present,
		Missing:       missing,
		CompletionPct: 100.0 * float64(len(present)) / float64(len(profile.Required)),
	}
}

func anySignal(signals []domain.DocumentType, seen map[domain.DocumentType]bool) bool {
	for _, t := range signals {
		if seen[t] {
			return true
		}
	}
	return false
}
