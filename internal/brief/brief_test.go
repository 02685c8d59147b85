package brief

import (
	"strings"
	"testing"

	"caseforge/internal/casegen"

	"github.com/stretchr/testify/assert"
)

func testCase() *casegen.Case {
	return &casegen.Case{
		Type:    casegen.CaseTheft,
		Number:  "#2217",
		Title:   "Break-In #2217 on the Fifth Floor",
		Summary: "The records room was forced open overnight.",
		Witnesses: []casegen.Witness{{
			Name:         "Riley Okafor",
			Role:         "Night Security Guard",
			Relationship: "Security Personnel",
			Backstory:    "Riley Okafor has been with TechCorp for 3 years as a Night Security Guard.",
		}},
		Evidence: []casegen.EvidenceItem{
			{Label: "Security footage", Status: casegen.AuthAuthenticated},
			{Label: "Badge access logs", Status: casegen.AuthPending},
		},
		Difficulty: 3.6,
		Traits: map[string]casegen.TraitValue{
			"forced_entry":  casegen.BoolTrait(true),
			"asset_tracing": casegen.IntTrait(2),
		},
		SpecialConditions: []string{"media_attention"},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(testCase())

	assert.True(t, strings.HasPrefix(md, "# Break-In #2217 on the Fifth Floor"))
	assert.Contains(t, md, "**Difficulty:** 3.60")
	assert.Contains(t, md, "Special conditions: media_attention")
	assert.Contains(t, md, "### 1. Riley Okafor — Night Security Guard")
	assert.Contains(t, md, "1. Security footage (authenticated ✓)")
	assert.Contains(t, md, "2. Badge access logs (pending)")

	// Traits render sorted by name.
	tracing := strings.Index(md, "asset_tracing: 2")
	forced := strings.Index(md, "forced_entry: true")
	assert.Greater(t, tracing, 0)
	assert.Greater(t, forced, tracing)
}

func TestMarkdownAnonymousWitness(t *testing.T) {
	c := testCase()
	c.Witnesses[0].Name = ""
	md := Markdown(c)
	assert.Contains(t, md, "### 1. Witness 1 —")
}

func TestSummary(t *testing.T) {
	got := Summary(testCase())
	assert.Contains(t, got, "Break-In #2217")
	assert.Contains(t, got, "difficulty 3.60")
	assert.Contains(t, got, "1 witnesses")
	assert.Contains(t, got, "2 evidence items")
}
