package casegen

import "sort"

// Score computes the difficulty of a case from its template's static inputs.
// It is a pure function: two cases generated from the same template always
// score identically, regardless of seed or synthesized content.
//
// The running total starts at baseComplexity. Integer traits add their value,
// true boolean traits add a unit weight of 1. Each modifier then multiplies
// the running total sequentially; because multiplication order is observable
// in floating point, modifiers are applied in ascending key order.
//
// Inputs are expected to be non-negative; the result is not clamped.
func Score(baseComplexity int, traits map[string]TraitValue, modifiers map[string]float64) float64 {
	traitSum := 0
	for _, v := range traits {
		traitSum += v.Weight()
	}

	total := float64(baseComplexity + traitSum)

	keys := make([]string, 0, len(modifiers))
	for k := range modifiers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		total *= modifiers[k]
	}
	return total
}
