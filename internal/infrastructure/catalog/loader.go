// Package catalog loads the static analysis rule set (document type keywords,
// red-flag rules, process profiles, knowledge snippets) from YAML. The default
// catalog is embedded in the binary; deployments can point CATALOG_PATH at an
// alternative file.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type fileCatalog struct {
	Version   string `yaml:"version"`
	Regulator struct {
		ShortName string `yaml:"short_name"`
		FullName  string `yaml:"full_name"`
	} `yaml:"regulator"`
	DocumentTypes []struct {
		ID       string   `yaml:"id"`
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"document_types"`
	RedFlags []struct {
		Category   string `yaml:"category"`
		Severity   string `yaml:"severity"`
		Message    string `yaml:"message"`
		Suggestion string `yaml:"suggestion"`
		Patterns   []struct {
			Match  string   `yaml:"match"`
			Unless []string `yaml:"unless"`
		} `yaml:"patterns"`
	} `yaml:"red_flags"`
	Processes []struct {
		ID       string   `yaml:"id"`
		Name     string   `yaml:"name"`
		Signals  []string `yaml:"signals"`
		Required []string `yaml:"required"`
	} `yaml:"processes"`
	Knowledge []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Category string `yaml:"category"`
		Content  string `yaml:"content"`
	} `yaml:"knowledge"`
}

// Load returns the embedded catalog, or the file at path when non-empty.
// Validation failures abort startup; a partially usable catalog is never
// returned.
func Load(path string) (*analysis.Catalog, error) {
	raw := embeddedCatalog
	if path != "" {
		fileRaw, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.WrapError(domain.ErrConfiguration, "read catalog file", err)
		}
		raw = fileRaw
	}
	return Parse(raw)
}

func Parse(raw []byte) (*analysis.Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, domain.WrapError(domain.ErrConfiguration, "parse catalog yaml", err)
	}

	out := &analysis.Catalog{
		Version: fc.Version,
		Regulator: analysis.RegulatorReference{
			ShortName: fc.Regulator.ShortName,
			FullName:  fc.Regulator.FullName,
		},
	}

	for _, dt := range fc.DocumentTypes {
		out.DocumentTypes = append(out.DocumentTypes, analysis.DocumentTypeSpec{
			ID:       domain.DocumentType(dt.ID),
			Name:     dt.Name,
			Keywords: dt.Keywords,
		})
	}

	for _, rf := range fc.RedFlags {
		rule := analysis.RedFlagRule{
			Category:   rf.Category,
			Severity:   domain.Severity(rf.Severity),
			Message:    rf.Message,
			Suggestion: rf.Suggestion,
		}
		for _, p := range rf.Patterns {
			rule.Patterns = append(rule.Patterns, analysis.RedFlagPattern{
				Match:  p.Match,
				Unless: p.Unless,
			})
		}
		out.RedFlagRules = append(out.RedFlagRules, rule)
	}

	for _, pr := range fc.Processes {
		profile := analysis.ProcessProfile{ID: pr.ID, Name: pr.Name}
		for _, s := range pr.Signals {
			profile.Signals = append(profile.Signals, domain.DocumentType(s))
		}
		for _, r := range pr.Required {
			profile.Required = append(profile.Required, domain.DocumentType(r))
		}
		out.Processes = append(out.Processes, profile)
	}

	for _, k := range fc.Knowledge {
		out.Knowledge = append(out.Knowledge, domain.KnowledgeEntry{
			ID:       k.ID,
			Title:    k.Title,
			Category: k.Category,
			Content:  k.Content,
		})
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	if len(out.Processes) == 0 {
		return nil, domain.WrapError(domain.ErrConfiguration, "parse catalog yaml", fmt.Errorf("no process profiles declared"))
	}
	return out, nil
}
