// Package casegen implements the case-instance generation engine.
//
// A CaseTemplate is a static blueprint: title fragments, a fixed summary,
// pools of witness attributes, an evidence label pool, difficulty inputs and
// structural counts. The Generator combines one template with an injected
// random source and returns a fully formed, internally consistent Case.
//
// Generation is pure and single threaded. All randomness flows through the
// explicit Source parameter, so a fixed seed and a fixed catalog reproduce
// the exact same Case.
package casegen

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CaseType tags the category of a template. Multiple templates may share a
// type; the set is open, these are the built-in categories.
type CaseType string

const (
	CaseWhiteCollar CaseType = "white_collar"
	CaseTheft       CaseType = "theft"
)

// AuthStatus is the authentication state of an evidence item.
type AuthStatus string

const (
	AuthPending       AuthStatus = "pending"       // not yet examined
	AuthAuthenticated AuthStatus = "authenticated" // passed the authentication roll
	AuthRejected      AuthStatus = "rejected"      // failed the authentication roll
)

// TraitKind discriminates the two value shapes a case-specific trait can take.
type TraitKind string

const (
	TraitInt  TraitKind = "int"
	TraitBool TraitKind = "bool"
)

// TraitValue is a tagged union: either a small integer severity axis or a
// boolean presence flag. Trait key sets vary per template, so templates carry
// an open map[string]TraitValue rather than fixed fields.
type TraitValue struct {
	kind    TraitKind
	intVal  int
	boolVal bool
}

// IntTrait wraps an integer-valued trait.
func IntTrait(v int) TraitValue { return TraitValue{kind: TraitInt, intVal: v} }

// BoolTrait wraps a boolean-valued trait.
func BoolTrait(v bool) TraitValue { return TraitValue{kind: TraitBool, boolVal: v} }

// Kind reports which arm of the union is populated.
func (t TraitValue) Kind() TraitKind { return t.kind }

// Int returns the integer value and whether the trait is integer-valued.
func (t TraitValue) Int() (int, bool) { return t.intVal, t.kind == TraitInt }

// Bool returns the boolean value and whether the trait is boolean-valued.
func (t TraitValue) Bool() (bool, bool) { return t.boolVal, t.kind == TraitBool }

// Weight is the trait's contribution to the difficulty trait-sum: the value
// itself for integer traits, a fixed unit weight for true boolean traits.
func (t TraitValue) Weight() int {
	switch t.kind {
	case TraitInt:
		return t.intVal
	case TraitBool:
		if t.boolVal {
			return 1
		}
	}
	return 0
}

// UnmarshalYAML accepts a bare int or bool scalar.
func (t *TraitValue) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		*t = BoolTrait(b)
		return nil
	}
	var i int
	if err := node.Decode(&i); err == nil {
		*t = IntTrait(i)
		return nil
	}
	return fmt.Errorf("trait value %q is neither int nor bool", node.Value)
}

// MarshalYAML emits the bare scalar form.
func (t TraitValue) MarshalYAML() (interface{}, error) {
	if t.kind == TraitBool {
		return t.boolVal, nil
	}
	return t.intVal, nil
}

// MarshalJSON emits the bare scalar form, mirroring the YAML encoding.
func (t TraitValue) MarshalJSON() ([]byte, error) {
	if t.kind == TraitBool {
		return json.Marshal(t.boolVal)
	}
	return json.Marshal(t.intVal)
}

// UnmarshalJSON accepts a bare int or bool scalar.
func (t *TraitValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = BoolTrait(b)
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*t = IntTrait(i)
		return nil
	}
	return fmt.Errorf("trait value %s is neither int nor bool", data)
}

// Witness is one synthesized witness record. The five pool-drawn fields
// (Role through SecurityRecord) carry the distinctness invariant: no two
// witnesses within one case are identical across all five.
type Witness struct {
	Name              string `json:"name"`
	Role              string `json:"role"`
	Achievement       string `json:"achievement"`
	SuspiciousActivity string `json:"suspicious_activity"`
	Responsibility    string `json:"responsibility"`
	SecurityRecord    string `json:"security_record"`
	Relationship      string `json:"relationship"`
	HiddenMotive      string `json:"hidden_motive"`
	Backstory         string `json:"backstory"`
}

// samePoolFields reports whether two witnesses collide across all five
// pool-drawn fields.
func (w Witness) samePoolFields(o Witness) bool {
	return w.Role == o.Role &&
		w.Achievement == o.Achievement &&
		w.SuspiciousActivity == o.SuspiciousActivity &&
		w.Responsibility == o.Responsibility &&
		w.SecurityRecord == o.SecurityRecord
}

// EvidenceItem is one synthesized evidence record. Labels are pairwise
// distinct within a case. Status is AuthPending unless the generator is
// configured to interpret an authentication special condition.
type EvidenceItem struct {
	Label  string     `json:"label"`
	Status AuthStatus `json:"status"`
}

// Case is the terminal, immutable output of one generation. It owns its
// witness and evidence slices exclusively; nothing is shared with the source
// template or with other cases.
type Case struct {
	Type              CaseType              `json:"type"`
	Number            string                `json:"number"` // case-identifying title fragment
	Title             string                `json:"title"`
	Summary           string                `json:"summary"`
	Witnesses         []Witness             `json:"witnesses"`
	Evidence          []EvidenceItem        `json:"evidence"`
	Difficulty        float64               `json:"difficulty"`
	Traits            map[string]TraitValue `json:"traits,omitempty"`
	SpecialConditions []string              `json:"special_conditions,omitempty"`
}
