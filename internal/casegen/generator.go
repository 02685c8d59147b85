package casegen

import "fmt"

// Generator synthesizes Cases from templates. The zero configuration from
// New is fully usable; options override the supplemental flavor pools and
// enable the evidence-authentication extension point.
//
// A Generator is stateless apart from its configuration and is safe for
// concurrent use as long as each Generate call receives its own Source.
type Generator struct {
	company       string
	firstNames    []string
	lastNames     []string
	relationships []string
	motives       []string
	authCondition string
}

// Option configures a Generator.
type Option func(*Generator)

// WithCompany sets the employer named in witness backstories.
func WithCompany(name string) Option {
	return func(g *Generator) { g.company = name }
}

// WithNames overrides the first/last name pools used for witness names.
// Empty pools disable name synthesis.
func WithNames(first, last []string) Option {
	return func(g *Generator) {
		g.firstNames = cloneStrings(first)
		g.lastNames = cloneStrings(last)
	}
}

// WithRelationships overrides the witness relationship pool.
func WithRelationships(pool []string) Option {
	return func(g *Generator) { g.relationships = cloneStrings(pool) }
}

// WithHiddenMotives overrides the hidden motive pool.
func WithHiddenMotives(pool []string) Option {
	return func(g *Generator) { g.motives = cloneStrings(pool) }
}

// WithAuthCondition enables evidence authentication for templates carrying
// the given special-condition tag (see authenticateEvidence).
func WithAuthCondition(tag string) Option {
	return func(g *Generator) { g.authCondition = tag }
}

// New returns a Generator with the built-in flavor pools.
func New(opts ...Option) *Generator {
	g := &Generator{
		company:       "TechCorp",
		firstNames:    defaultFirstNames,
		lastNames:     defaultLastNames,
		relationships: defaultRelationships,
		motives:       defaultHiddenMotives,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate selects one template uniformly at random from the catalog and
// synthesizes a complete Case from it.
//
// Randomness is consumed in a fixed order: template selection, case number,
// witness synthesis, evidence synthesis, then the optional authentication
// rolls. A fixed seed and a fixed catalog therefore reproduce the exact same
// Case. The selected template is snapshotted before any field is read, so a
// concurrent catalog swap never exposes a torn record.
func (g *Generator) Generate(templates []CaseTemplate, rng Source) (*Case, error) {
	if len(templates) == 0 {
		return nil, ErrEmptyCatalog
	}

	tpl := templates[rng.Intn(len(templates))].Clone()

	number := fmt.Sprintf("#%04d", 1000+rng.Intn(9000))
	title := fmt.Sprintf("%s %s%s", tpl.TitlePrefix, number, tpl.TitleSuffix)

	witnesses, err := g.synthesizeWitnesses(tpl.WitnessData, tpl.NumWitnesses, rng)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", tpl.Type, err)
	}

	evidence, err := synthesizeEvidence(tpl.EvidenceTemplates, tpl.NumEvidence, rng)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", tpl.Type, err)
	}
	g.authenticateEvidence(evidence, tpl, rng)

	return &Case{
		Type:              tpl.Type,
		Number:            number,
		Title:             title,
		Summary:           tpl.Summary,
		Witnesses:         witnesses,
		Evidence:          evidence,
		Difficulty:        Score(tpl.Complexity, tpl.CaseSpecificTraits, tpl.DifficultyModifiers),
		Traits:            tpl.CaseSpecificTraits,
		SpecialConditions: tpl.SpecialConditions,
	}, nil
}

// Generate is the package-level convenience over a default Generator.
func Generate(templates []CaseTemplate, rng Source) (*Case, error) {
	return New().Generate(templates, rng)
}
