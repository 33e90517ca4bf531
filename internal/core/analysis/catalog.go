package analysis

import (
	"errors"
	"fmt"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

// Catalog is the static rule set the whole analysis core runs on: document
// type keywords, red-flag rules, process profiles and the knowledge table.
// It is loaded once at startup and injected read-only into each component.
//
// Declaration order is significant everywhere: classifier tie-breaks follow
// DocumentTypes order, scan output follows RedFlagRules order, and process
// selection follows Processes order (first signal match wins).
type Catalog struct {
	Version       string
	Regulator     RegulatorReference
	DocumentTypes []DocumentTypeSpec
	RedFlagRules  []RedFlagRule
	Processes     []ProcessProfile
	Knowledge     []domain.KnowledgeEntry
}

// RegulatorReference carries the tokens of the standing scanner rule: a
// document mentioning neither form is flagged regardless of the regex table.
type RegulatorReference struct {
	ShortName string
	FullName  string
}

type DocumentTypeSpec struct {
	ID       domain.DocumentType
	Name     string
	Keywords []string
}

// RedFlagPattern is one matcher within a rule. Unless lists suppression
// regexes: a match is discarded when any of them also matches the text. This
// stands in for the negative lookahead the rule tables are usually written
// with, which RE2 does not support.
type RedFlagPattern struct {
	Match  string
	Unless []string
}

type RedFlagRule struct {
	Category   string
	Patterns   []RedFlagPattern
	Severity   domain.Severity
	Message    string
	Suggestion string
}

type ProcessProfile struct {
	ID       string
	Name     string
	Signals  []domain.DocumentType
	Required []domain.DocumentType
}

// Validate rejects catalogs the core cannot safely run on. Any failure here
// is a startup-time ErrConfiguration; a bad rule is never skipped.
func (c *Catalog) Validate() error {
	if len(c.DocumentTypes) == 0 {
		return domain.WrapError(domain.ErrConfiguration, "validate catalog", errors.New("no document types declared"))
	}
	if len(c.RedFlagRules) == 0 {
		return domain.WrapError(domain.ErrConfiguration, "validate catalog", errors.New("no red-flag rules declared"))
	}
	if c.Regulator.ShortName == "" || c.Regulator.FullName == "" {
		return domain.WrapError(domain.ErrConfiguration, "validate catalog", errors.New("regulator reference tokens missing"))
	}

	declared := make(map[domain.DocumentType]bool, len(c.DocumentTypes))
	for _, spec := range c.DocumentTypes {
		if spec.ID == "" || spec.ID == domain.TypeUnknown {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog",
				fmt.Errorf("invalid document type id %q", spec.ID))
		}
		if declared[spec.ID] {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog",
				fmt.Errorf("duplicate document type %q", spec.ID))
		}
		if len(spec.Keywords) == 0 {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog",
				fmt.Errorf("document type %q has no keywords", spec.ID))
		}
		declared[spec.ID] = true
	}

	for _, rule := range c.RedFlagRules {
		if rule.Category == "" {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog", errors.New("red-flag rule without category"))
		}
		if rule.Severity != domain.SeverityHigh && rule.Severity != domain.SeverityMedium {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog",
				fmt.Errorf("rule %q has unsupported severity %q", rule.Category, rule.Severity))
		}
		if len(rule.Patterns) == 0 {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog",
				fmt.Errorf("rule %q has no patterns", rule.Category))
		}
	}

	for _, process := range c.Processes {
		if process.ID == "" || process.Name == "" {
			return domain.WrapError(domain.ErrConfiguration, "validate catalog", errors.New("process profile without id or name"))
		}
		for _, t := range process.Signals {
			if !declared[t] {
				return domain.WrapError(domain.ErrConfiguration, "validate catalog",
					fmt.Errorf("process %q signal references undeclared type %q", process.ID, t))
			}
		}
		for _, t := range process.Required {
			if !declared[t] {
				return domain.WrapError(domain.ErrConfiguration, "validate catalog",
					fmt.Errorf("process %q requires undeclared type %q", process.ID, t))
			}
		}
	}

	return nil
}

// DisplayName resolves a type id to its configured display name.
func (c *Catalog) DisplayName(id domain.DocumentType) string {
	for _, spec := range c.DocumentTypes {
		if spec.ID == id {
			return spec.Name
		}
	}
	return string(id)
}
