package casegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evidenceLabels = []string{
	"Financial records", "Email correspondence", "Security footage",
	"Access logs", "Shredded documents",
}

func TestSynthesizeEvidence(t *testing.T) {
	t.Run("labels are pairwise distinct", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			items, err := synthesizeEvidence(evidenceLabels, 4, NewSource(seed))
			require.NoError(t, err)
			require.Len(t, items, 4)

			seen := make(map[string]bool)
			for _, it := range items {
				assert.False(t, seen[it.Label], "duplicate label %q", it.Label)
				seen[it.Label] = true
				assert.Contains(t, evidenceLabels, it.Label)
				assert.Equal(t, AuthPending, it.Status)
			}
		}
	})

	t.Run("count zero is valid", func(t *testing.T) {
		items, err := synthesizeEvidence(evidenceLabels, 0, NewSource(1))
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("count beyond pool size is an authoring error", func(t *testing.T) {
		_, err := synthesizeEvidence(evidenceLabels, 6, NewSource(1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsufficientEvidencePool))
	})

	t.Run("source labels are not reordered", func(t *testing.T) {
		before := cloneStrings(evidenceLabels)
		_, err := synthesizeEvidence(evidenceLabels, 3, NewSource(3))
		require.NoError(t, err)
		assert.Equal(t, before, evidenceLabels)
	})
}

func TestAuthenticateEvidence(t *testing.T) {
	tpl := CaseTemplate{
		Type:              CaseWhiteCollar,
		SpecialConditions: []string{"media_attention", "forensic_audit"},
	}

	t.Run("no-op without a configured condition", func(t *testing.T) {
		g := New()
		items := []EvidenceItem{{Label: "Access logs", Status: AuthPending}}
		g.authenticateEvidence(items, tpl, NewSource(1))
		assert.Equal(t, AuthPending, items[0].Status)
	})

	t.Run("no-op when the template lacks the tag", func(t *testing.T) {
		g := New(WithAuthCondition("forensic_audit"))
		bare := CaseTemplate{Type: CaseTheft}
		items := []EvidenceItem{{Label: "Access logs", Status: AuthPending}}
		g.authenticateEvidence(items, bare, NewSource(1))
		assert.Equal(t, AuthPending, items[0].Status)
	})

	t.Run("modifier at 2.0 authenticates everything", func(t *testing.T) {
		g := New(WithAuthCondition("forensic_audit"))
		boosted := tpl
		boosted.DifficultyModifiers = map[string]float64{evidenceAuthModifier: 2.0}
		items := make([]EvidenceItem, 5)
		g.authenticateEvidence(items, boosted, NewSource(9))
		for _, it := range items {
			assert.Equal(t, AuthAuthenticated, it.Status)
		}
	})

	t.Run("modifier at zero rejects everything", func(t *testing.T) {
		g := New(WithAuthCondition("forensic_audit"))
		hostile := tpl
		hostile.DifficultyModifiers = map[string]float64{evidenceAuthModifier: 0.0}
		items := make([]EvidenceItem, 5)
		g.authenticateEvidence(items, hostile, NewSource(9))
		for _, it := range items {
			assert.Equal(t, AuthRejected, it.Status)
		}
	})

	t.Run("missing modifier defaults to the base rate", func(t *testing.T) {
		g := New(WithAuthCondition("forensic_audit"))
		items := make([]EvidenceItem, 50)
		g.authenticateEvidence(items, tpl, NewSource(11))
		for _, it := range items {
			assert.NotEqual(t, AuthPending, it.Status)
		}
	})
}
