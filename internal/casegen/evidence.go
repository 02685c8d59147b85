package casegen

import "fmt"

// authenticationBase is the base probability that an evidence item passes
// authentication before the template's evidence_authentication modifier is
// applied.
const authenticationBase = 0.7

// evidenceAuthModifier is the difficulty modifier key consulted by the
// authentication roll.
const evidenceAuthModifier = "evidence_authentication"

// synthesizeEvidence draws count distinct labels from the template's pool: a
// random permutation of the labels, truncated to count. Every produced item
// starts as AuthPending; authentication is a separate, optional step.
func synthesizeEvidence(labels []string, count int, rng Source) ([]EvidenceItem, error) {
	if count > len(labels) {
		return nil, fmt.Errorf("%w: need %d, have %d labels",
			ErrInsufficientEvidencePool, count, len(labels))
	}

	shuffled := cloneStrings(labels)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	items := make([]EvidenceItem, count)
	for i := 0; i < count; i++ {
		items[i] = EvidenceItem{Label: shuffled[i], Status: AuthPending}
	}
	return items, nil
}

// authenticateEvidence is the documented extension point of the evidence
// synthesizer. When the generator is configured with an authentication
// condition tag and the selected template carries it, each item is rolled:
// authenticated if rng.Float64() < authenticationBase multiplied by the
// template's evidence_authentication modifier (1.0 when absent), rejected
// otherwise. Without the tag every item stays AuthPending for a downstream
// collaborator to settle.
func (g *Generator) authenticateEvidence(items []EvidenceItem, tpl CaseTemplate, rng Source) {
	if g.authCondition == "" || !tpl.HasCondition(g.authCondition) {
		return
	}
	mod, ok := tpl.DifficultyModifiers[evidenceAuthModifier]
	if !ok {
		mod = 1.0
	}
	for i := range items {
		if rng.Float64() < authenticationBase*mod {
			items[i].Status = AuthAuthenticated
		} else {
			items[i].Status = AuthRejected
		}
	}
}
