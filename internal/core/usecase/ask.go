package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// AskUseCase answers guidance questions from the static knowledge table by
// keyword overlap. Deliberately a lookup table with substring ranking, not a
// retrieval system.
type AskUseCase struct {
	entries []domain.KnowledgeEntry
}

func NewAskUseCase(entries []domain.KnowledgeEntry) *AskUseCase {
	return &AskUseCase{entries: entries}
}

const maxAnswerEntries = 2

func (uc *AskUseCase) Ask(_ context.Context, question string) (*domain.KnowledgeAnswer, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "ask", fmt.Errorf("empty question"))
	}

	type scored struct {
		entry domain.KnowledgeEntry
		score int
		order int
	}

	var hits []scored
	words := questionWords(q)
	for i, entry := range uc.entries {
		content := strings.ToLower(entry.Content)
		title := strings.ToLower(entry.Title)
		score := 0
		for _, word := range words {
			if strings.Contains(content, word) || strings.Contains(title, word) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{entry: entry, score: score, order: i})
		}
	}

	if len(hits) == 0 {
		return &domain.KnowledgeAnswer{Text: defaultAnswer(q), Sources: []domain.KnowledgeEntry{}}, nil
	}

	// Highest overlap first; catalog order breaks ties so answers are stable.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].order < hits[j].order
	})
	if len(hits) > maxAnswerEntries {
		hits = hits[:maxAnswerEntries]
	}

	var b strings.Builder
	b.WriteString("Based on ADGM regulations, here's what you need to know:\n\n")
	sources := make([]domain.KnowledgeEntry, 0, len(hits))
	for _, hit := range hits {
		fmt.Fprintf(&b, "%s\n\n%s\n\n", hit.entry.Title, hit.entry.Content)
		sources = append(sources, hit.entry)
	}
	b.WriteString("Note: this guidance is based on ADGM regulations. Always consult qualified legal professionals for official advice.")

	return &domain.KnowledgeAnswer{Text: b.String(), Sources: sources}, nil
}

// questionWords keeps lower-cased tokens longer than three characters, the
// same filter the knowledge table was tuned against.
func questionWords(question string) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(question)) {
		word = strings.Trim(word, ".,;:?!\"'()")
		if len(word) > 3 {
			words = append(words, word)
		}
	}
	return words
}

func defaultAnswer(question string) string {
	return fmt.Sprintf(`I understand you're asking about: %q

While I don't have specific information matching your query, here are some general ADGM guidance points:

- Jurisdiction: documents must reference ADGM Courts and ADGM law, not UAE Federal Courts.
- Company incorporation: requires Articles of Association, Board Resolution, UBO Declaration, Incorporation Form, and Register of Members and Directors.
- UBO: declare any individual with 25%%+ ownership or control.
- Employment: use ADGM-compliant contract terms.

For detailed guidance, please consult ADGM official resources or qualified legal professionals.`, question)
}
