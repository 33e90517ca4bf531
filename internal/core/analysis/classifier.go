package analysis

import (
	"strings"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// Classifier scores raw text against the catalog's keyword sets. Pure and
// stateless after construction; safe for concurrent use.
type Classifier struct {
	types []DocumentTypeSpec
}

func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{types: catalog.DocumentTypes}
}

// Classify returns the document type with the strictly highest keyword score,
// or TypeUnknown when nothing scores above zero. Keywords count once each as
// case-insensitive substrings; there is deliberately no token-boundary check
// ("employee" matches inside "unemployee"). Ties resolve to the type declared
// first in the catalog, which keeps the result independent of map iteration
// order.
func (c *Classifier) Classify(text string) domain.DocumentType {
	lower := strings.ToLower(text)

	best := domain.TypeUnknown
	bestScore := 0
	for _, spec := range c.types {
		score := 0
		for _, keyword := range spec.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				score++
			}
		}
		if score > bestScore {
			best = spec.ID
			bestScore = score
		}
	}
	return best
}
