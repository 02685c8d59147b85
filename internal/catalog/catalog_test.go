package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"caseforge/internal/casegen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `
templates:
  - type: theft
    title_prefix: "Break-In"
    title_suffix: " on the Fifth Floor"
    summary: "The records room was forced open overnight."
    evidence_templates: [Security footage, Badge access logs, Inventory manifest]
    witness_data:
      possible_roles: [Night Security Guard, Records Clerk]
      possible_achievements: [worked the night shift without incident]
      possible_suspicious_activities: [they could not account for a gap, nothing unusual]
      possible_responsibilities: [locking up the fifth floor]
      possible_security_records: [no prior issues]
    case_specific_traits:
      forced_entry: true
      asset_tracing: 2
    difficulty_modifiers:
      witness_reliability: 0.9
    num_witnesses: 2
    num_evidence: 2
    complexity: 2
names:
  first_names: [Dana]
  last_names: [Briggs]
`

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		f, err := Parse([]byte(minimalCatalog))
		require.NoError(t, err)
		require.Len(t, f.Templates, 1)

		tpl := f.Templates[0]
		assert.Equal(t, casegen.CaseTheft, tpl.Type)
		assert.Equal(t, 2, tpl.NumWitnesses)
		assert.Equal(t, []string{"Dana"}, f.Names.First)

		// Trait values decode as the tagged union.
		forced, ok := tpl.CaseSpecificTraits["forced_entry"]
		require.True(t, ok)
		b, isBool := forced.Bool()
		assert.True(t, isBool)
		assert.True(t, b)

		tracing := tpl.CaseSpecificTraits["asset_tracing"]
		i, isInt := tracing.Int()
		assert.True(t, isInt)
		assert.Equal(t, 2, i)
	})

	t.Run("empty document is rejected", func(t *testing.T) {
		_, err := Parse([]byte("templates: []"))
		assert.True(t, errors.Is(err, casegen.ErrEmptyCatalog))
	})

	t.Run("non-scalar trait value is rejected", func(t *testing.T) {
		bad := `
templates:
  - type: theft
    summary: "x"
    complexity: 1
    case_specific_traits:
      weird: [1, 2]
`
		_, err := Parse([]byte(bad))
		assert.Error(t, err)
	})

	t.Run("oversized num_evidence is an authoring error", func(t *testing.T) {
		bad := `
templates:
  - type: theft
    summary: "x"
    complexity: 1
    evidence_templates: [a, b]
    num_evidence: 3
`
		_, err := Parse([]byte(bad))
		assert.True(t, errors.Is(err, casegen.ErrInsufficientEvidencePool))
	})

	t.Run("empty witness pool with witnesses requested", func(t *testing.T) {
		bad := `
templates:
  - type: theft
    summary: "x"
    complexity: 1
    num_witnesses: 1
    witness_data:
      possible_roles: [Guard]
`
		_, err := Parse([]byte(bad))
		require.True(t, errors.Is(err, casegen.ErrInsufficientPoolData))
		assert.Contains(t, err.Error(), "possible_achievements")
	})

	t.Run("zero counts are valid", func(t *testing.T) {
		ok := `
templates:
  - type: theft
    summary: "x"
    complexity: 1
`
		f, err := Parse([]byte(ok))
		require.NoError(t, err)
		assert.Equal(t, 0, f.Templates[0].NumWitnesses)
	})
}

func TestLoad(t *testing.T) {
	t.Run("round trip from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0644))

		f, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, f.Templates, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadEmbedded(t *testing.T) {
	f, err := LoadEmbedded()
	require.NoError(t, err)
	require.Len(t, f.Templates, 2)

	types := []casegen.CaseType{f.Templates[0].Type, f.Templates[1].Type}
	assert.Contains(t, types, casegen.CaseWhiteCollar)
	assert.Contains(t, types, casegen.CaseTheft)
	assert.NotEmpty(t, f.Names.First)

	// Built-in templates must be generable as-is.
	for _, tpl := range f.Templates {
		c, err := casegen.Generate([]casegen.CaseTemplate{tpl}, casegen.NewSource(1))
		require.NoError(t, err)
		assert.Len(t, c.Witnesses, tpl.NumWitnesses)
		assert.Len(t, c.Evidence, tpl.NumEvidence)
	}
}

func TestCatalogSnapshot(t *testing.T) {
	f, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)
	cat := New(f)

	snap := cat.Snapshot()
	require.Len(t, snap, 1)

	// Mutating a snapshot must not leak back into the catalog.
	snap[0].EvidenceTemplates[0] = "tampered"
	snap[0].CaseSpecificTraits["forced_entry"] = casegen.IntTrait(99)

	fresh := cat.Snapshot()
	assert.Equal(t, "Security footage", fresh[0].EvidenceTemplates[0])
	v := fresh[0].CaseSpecificTraits["forced_entry"]
	b, isBool := v.Bool()
	assert.True(t, isBool)
	assert.True(t, b)
}
