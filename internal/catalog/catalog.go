// Package catalog is the template store: it loads case templates from YAML,
// validates them structurally, and hands read-only snapshots to the
// generator. A built-in catalog is baked into the binary with go:embed so the
// tool works without any files on disk.
package catalog

import (
	"fmt"
	"os"
	"sync"

	"caseforge/internal/casegen"
	"caseforge/internal/logging"

	"gopkg.in/yaml.v3"
)

// NamePools carries the optional first/last name pools used for witness name
// synthesis. Kept separate from the templates because names are shared across
// every case category.
type NamePools struct {
	First []string `yaml:"first_names"`
	Last  []string `yaml:"last_names"`
}

// File is the on-disk catalog document.
type File struct {
	Templates []casegen.CaseTemplate `yaml:"templates"`
	Names     NamePools              `yaml:"names"`
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("catalog: %w", casegen.ErrEmptyCatalog)
	}
	for i, tpl := range f.Templates {
		if err := validateTemplate(tpl); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, tpl.Type, err)
		}
	}
	return &f, nil
}

// Load reads and validates a catalog file from disk.
func Load(path string) (*File, error) {
	timer := logging.StartTimer(logging.CategoryCatalog, "Load")
	defer timer.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	logging.Catalog("loaded %d templates from %s", len(f.Templates), path)
	return f, nil
}

// validateTemplate surfaces template-authoring errors at load time instead of
// at generation time.
func validateTemplate(tpl casegen.CaseTemplate) error {
	if tpl.Type == "" {
		return fmt.Errorf("missing type")
	}
	if tpl.Summary == "" {
		return fmt.Errorf("missing summary")
	}
	if tpl.Complexity < 1 {
		return fmt.Errorf("complexity must be at least 1, got %d", tpl.Complexity)
	}
	if tpl.NumWitnesses < 0 || tpl.NumEvidence < 0 {
		return fmt.Errorf("negative synthesis count")
	}
	if tpl.NumEvidence > len(tpl.EvidenceTemplates) {
		return fmt.Errorf("%w: num_evidence %d exceeds %d labels",
			casegen.ErrInsufficientEvidencePool, tpl.NumEvidence, len(tpl.EvidenceTemplates))
	}
	if tpl.NumWitnesses > 0 {
		pools := []struct {
			name string
			pool []string
		}{
			{"possible_roles", tpl.WitnessData.Roles},
			{"possible_achievements", tpl.WitnessData.Achievements},
			{"possible_suspicious_activities", tpl.WitnessData.SuspiciousActivities},
			{"possible_responsibilities", tpl.WitnessData.Responsibilities},
			{"possible_security_records", tpl.WitnessData.SecurityRecords},
		}
		for _, p := range pools {
			if len(p.pool) == 0 {
				return fmt.Errorf("%w: %s", casegen.ErrInsufficientPoolData, p.name)
			}
		}
	}
	return nil
}

// Catalog is a concurrency-safe holder for the active template set. The
// generator only ever sees snapshots, so a hot reload can swap the set while
// generations are in flight.
type Catalog struct {
	mu        sync.RWMutex
	templates []casegen.CaseTemplate
	names     NamePools
}

// New builds a Catalog from a parsed file.
func New(f *File) *Catalog {
	c := &Catalog{}
	c.Replace(f)
	return c
}

// Replace atomically swaps the active template set.
func (c *Catalog) Replace(f *File) {
	templates := make([]casegen.CaseTemplate, len(f.Templates))
	for i, tpl := range f.Templates {
		templates[i] = tpl.Clone()
	}
	c.mu.Lock()
	c.templates = templates
	c.names = NamePools{
		First: append([]string(nil), f.Names.First...),
		Last:  append([]string(nil), f.Names.Last...),
	}
	c.mu.Unlock()
}

// Snapshot returns a copy of the active template set, safe to read while the
// catalog is concurrently replaced.
func (c *Catalog) Snapshot() []casegen.CaseTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]casegen.CaseTemplate, len(c.templates))
	for i, tpl := range c.templates {
		out[i] = tpl.Clone()
	}
	return out
}

// Names returns the configured witness name pools.
func (c *Catalog) Names() NamePools {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return NamePools{
		First: append([]string(nil), c.names.First...),
		Last:  append([]string(nil), c.names.Last...),
	}
}

// Len reports how many templates are active.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}
