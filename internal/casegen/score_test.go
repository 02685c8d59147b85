package casegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("reference vector", func(t *testing.T) {
		// complexity 3, trait-sum 3+1+2 = 6, base 9,
		// then 9 * 1.2 (evidence_authentication) * 0.8 (witness_reliability).
		traits := map[string]TraitValue{
			"financial_complexity":  IntTrait(3),
			"technological_element": BoolTrait(true),
			"public_interest":       IntTrait(2),
		}
		modifiers := map[string]float64{
			"evidence_authentication": 1.2,
			"witness_reliability":     0.8,
		}
		assert.InDelta(t, 8.64, Score(3, traits, modifiers), 1e-9)
	})

	t.Run("no traits or modifiers", func(t *testing.T) {
		assert.Equal(t, 5.0, Score(5, nil, nil))
	})

	t.Run("false boolean trait adds nothing", func(t *testing.T) {
		traits := map[string]TraitValue{
			"inside_job":    BoolTrait(false),
			"media_frenzy":  BoolTrait(true),
			"asset_tracing": IntTrait(4),
		}
		assert.Equal(t, 7.0, Score(2, traits, nil))
	})

	t.Run("modifiers multiply sequentially", func(t *testing.T) {
		modifiers := map[string]float64{
			"b_second": 0.5,
			"a_first":  3.0,
		}
		assert.InDelta(t, 15.0, Score(10, nil, modifiers), 1e-9)
	})
}

func TestTraitValueWeight(t *testing.T) {
	assert.Equal(t, 4, IntTrait(4).Weight())
	assert.Equal(t, 1, BoolTrait(true).Weight())
	assert.Equal(t, 0, BoolTrait(false).Weight())
	assert.Equal(t, 0, TraitValue{}.Weight())
}
