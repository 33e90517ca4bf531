package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// Scanner evaluates every red-flag rule against a document's text. Rules run
// in catalog order and each matching pattern emits its own flag, so the output
// sequence is deterministic for identical input; downstream report truncation
// relies on that.
type Scanner struct {
	rules     []compiledRule
	shortName string
	fullName  string
	regFlag   domain.RedFlag
}

type compiledRule struct {
	source   RedFlagRule
	patterns []compiledPattern
}

type compiledPattern struct {
	match  *regexp.Regexp
	unless []*regexp.Regexp
}

// NewScanner compiles the rule table once. A malformed pattern is a fatal
// configuration error, never a skipped rule.
func NewScanner(catalog *Catalog) (*Scanner, error) {
	rules := make([]compiledRule, 0, len(catalog.RedFlagRules))
	for _, rule := range catalog.RedFlagRules {
		compiled := compiledRule{source: rule}
		for _, pattern := range rule.Patterns {
			re, err := regexp.Compile(pattern.Match)
			if err != nil {
				return nil, domain.WrapError(domain.ErrConfiguration, "compile red-flag pattern",
					fmt.Errorf("rule %q pattern %q: %w", rule.Category, pattern.Match, err))
			}
			cp := compiledPattern{match: re}
			for _, suppress := range pattern.Unless {
				sre, err := regexp.Compile(suppress)
				if err != nil {
					return nil, domain.WrapError(domain.ErrConfiguration, "compile red-flag pattern",
						fmt.Errorf("rule %q unless %q: %w", rule.Category, suppress, err))
				}
				cp.unless = append(cp.unless, sre)
			}
			compiled.patterns = append(compiled.patterns, cp)
		}
		rules = append(rules, compiled)
	}

	return &Scanner{
		rules:     rules,
		shortName: strings.ToLower(catalog.Regulator.ShortName),
		fullName:  strings.ToLower(catalog.Regulator.FullName),
		regFlag: domain.RedFlag{
			Category:   "missing_adgm_reference",
			Severity:   domain.SeverityHigh,
			Message:    fmt.Sprintf("Document does not reference %s or %s", strings.ToUpper(catalog.Regulator.ShortName), titleWords(catalog.Regulator.FullName)),
			Suggestion: "Add proper ADGM governing law clause",
		},
	}, nil
}

// Scan returns all matched flags in rule order, then the standing regulator
// check. Multiple patterns under one rule may each emit a flag; there is no
// de-duplication within a rule.
func (s *Scanner) Scan(text string) []domain.RedFlag {
	lower := strings.ToLower(text)

	var flags []domain.RedFlag
	for _, rule := range s.rules {
		for _, pattern := range rule.patterns {
			if !pattern.match.MatchString(lower) {
				continue
			}
			if suppressed(pattern.unless, lower) {
				continue
			}
			flags = append(flags, domain.RedFlag{
				Category:   rule.source.Category,
				Severity:   rule.source.Severity,
				Message:    rule.source.Message,
				Suggestion: rule.source.Suggestion,
			})
		}
	}

	if !strings.Contains(lower, s.shortName) && !strings.Contains(lower, s.fullName) {
		flags = append(flags, s.regFlag)
	}
	return flags
}

func suppressed(unless []*regexp.Regexp, lower string) bool {
	for _, re := range unless {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
