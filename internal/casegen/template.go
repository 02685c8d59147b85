package casegen

// WitnessPools holds the five independent attribute pools a template draws
// witnesses from. The pools carry no positional correspondence; each witness
// field is drawn independently from its own pool.
type WitnessPools struct {
	Roles                []string `yaml:"possible_roles" json:"possible_roles"`
	Achievements         []string `yaml:"possible_achievements" json:"possible_achievements"`
	SuspiciousActivities []string `yaml:"possible_suspicious_activities" json:"possible_suspicious_activities"`
	Responsibilities     []string `yaml:"possible_responsibilities" json:"possible_responsibilities"`
	SecurityRecords      []string `yaml:"possible_security_records" json:"possible_security_records"`
}

// clone deep-copies the pools so a snapshot never aliases catalog memory.
func (p WitnessPools) clone() WitnessPools {
	return WitnessPools{
		Roles:                cloneStrings(p.Roles),
		Achievements:         cloneStrings(p.Achievements),
		SuspiciousActivities: cloneStrings(p.SuspiciousActivities),
		Responsibilities:     cloneStrings(p.Responsibilities),
		SecurityRecords:      cloneStrings(p.SecurityRecords),
	}
}

// CaseTemplate is the immutable blueprint for one category of case. The
// generator only reads templates; it never mutates them.
type CaseTemplate struct {
	Type              CaseType              `yaml:"type" json:"type"`
	TitlePrefix       string                `yaml:"title_prefix" json:"title_prefix"`
	TitleSuffix       string                `yaml:"title_suffix" json:"title_suffix"`
	Summary           string                `yaml:"summary" json:"summary"`
	EvidenceTemplates []string              `yaml:"evidence_templates" json:"evidence_templates"`
	WitnessData       WitnessPools          `yaml:"witness_data" json:"witness_data"`
	CaseSpecificTraits map[string]TraitValue `yaml:"case_specific_traits" json:"case_specific_traits"`
	DifficultyModifiers map[string]float64   `yaml:"difficulty_modifiers" json:"difficulty_modifiers"`
	SpecialConditions []string              `yaml:"special_conditions" json:"special_conditions"`
	NumWitnesses      int                   `yaml:"num_witnesses" json:"num_witnesses"`
	NumEvidence       int                   `yaml:"num_evidence" json:"num_evidence"`
	Complexity        int                   `yaml:"complexity" json:"complexity"`
}

// Clone deep-copies the template. The generator snapshots the template it
// selects before reading any field, so a concurrent catalog swap can never
// expose a torn record to an in-flight generation.
func (t CaseTemplate) Clone() CaseTemplate {
	c := t
	c.EvidenceTemplates = cloneStrings(t.EvidenceTemplates)
	c.WitnessData = t.WitnessData.clone()
	c.SpecialConditions = cloneStrings(t.SpecialConditions)
	if t.CaseSpecificTraits != nil {
		c.CaseSpecificTraits = make(map[string]TraitValue, len(t.CaseSpecificTraits))
		for k, v := range t.CaseSpecificTraits {
			c.CaseSpecificTraits[k] = v
		}
	}
	if t.DifficultyModifiers != nil {
		c.DifficultyModifiers = make(map[string]float64, len(t.DifficultyModifiers))
		for k, v := range t.DifficultyModifiers {
			c.DifficultyModifiers[k] = v
		}
	}
	return c
}

// HasCondition reports whether the template carries the given special
// condition tag.
func (t CaseTemplate) HasCondition(tag string) bool {
	for _, c := range t.SpecialConditions {
		if c == tag {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
