package casegen

import "fmt"

// maxRedraws bounds the collision-avoidance loop in synthesizeWitnesses.
// Past the bound a duplicate record is accepted rather than looping forever;
// exact avoidance is best-effort when the requested count approaches the
// product of the pool sizes.
const maxRedraws = 8

// Default flavor pools, lifted from the built-in data set. They back the
// supplemental witness fields (name, relationship, motive) and can be
// overridden per Generator.
var (
	defaultFirstNames = []string{
		"Alex", "Jordan", "Morgan", "Casey", "Riley",
		"Dana", "Quinn", "Avery", "Harper", "Reese",
	}
	defaultLastNames = []string{
		"Mercer", "Calloway", "Briggs", "Whitfield", "Okafor",
		"Lindqvist", "Tanaka", "Reyes", "Donahue", "Park",
	}
	defaultRelationships = []string{
		"Colleague", "Supervisor", "Subordinate", "Client",
		"Vendor", "External Auditor", "Security Personnel",
	}
	defaultHiddenMotives = []string{
		"Financial struggles", "Personal grudges", "Desire for recognition",
		"Protecting someone", "Fear of reprisal",
	}
)

// synthesizeWitnesses produces count distinct witness records from the
// template's pools.
//
// Randomness order per witness: role, achievement, suspicious activity,
// responsibility, security record; then up to maxRedraws redraws of the
// suspicious-activity and responsibility fields if the five-field record
// collides with an earlier witness; then first name, last name,
// relationship, hidden motive and tenure years for the backstory.
func (g *Generator) synthesizeWitnesses(pools WitnessPools, count int, rng Source) ([]Witness, error) {
	witnesses := make([]Witness, 0, count)
	if count == 0 {
		return witnesses, nil
	}

	required := []struct {
		name string
		pool []string
	}{
		{"roles", pools.Roles},
		{"achievements", pools.Achievements},
		{"suspicious_activities", pools.SuspiciousActivities},
		{"responsibilities", pools.Responsibilities},
		{"security_records", pools.SecurityRecords},
	}
	for _, r := range required {
		if len(r.pool) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientPoolData, r.name)
		}
	}

	for i := 0; i < count; i++ {
		w := Witness{
			Role:               pick(rng, pools.Roles),
			Achievement:        pick(rng, pools.Achievements),
			SuspiciousActivity: pick(rng, pools.SuspiciousActivities),
			Responsibility:     pick(rng, pools.Responsibilities),
			SecurityRecord:     pick(rng, pools.SecurityRecords),
		}

		// Best-effort duplicate avoidance: only the suspicious-activity and
		// responsibility axes are redrawn, a fixed policy choice.
		for attempt := 0; attempt < maxRedraws && collides(w, witnesses); attempt++ {
			w.SuspiciousActivity = pick(rng, pools.SuspiciousActivities)
			w.Responsibility = pick(rng, pools.Responsibilities)
		}

		if len(g.firstNames) > 0 && len(g.lastNames) > 0 {
			w.Name = pick(rng, g.firstNames) + " " + pick(rng, g.lastNames)
		}
		if len(g.relationships) > 0 {
			w.Relationship = pick(rng, g.relationships)
		}
		if len(g.motives) > 0 {
			w.HiddenMotive = pick(rng, g.motives)
		}
		years := 2 + rng.Intn(9) // tenure of 2-10 years
		w.Backstory = renderBackstory(w, g.company, years)

		witnesses = append(witnesses, w)
	}
	return witnesses, nil
}

func collides(w Witness, earlier []Witness) bool {
	for _, e := range earlier {
		if w.samePoolFields(e) {
			return true
		}
	}
	return false
}

// renderBackstory assembles the narrative paragraph shown for a witness.
func renderBackstory(w Witness, company string, years int) string {
	name := w.Name
	if name == "" {
		name = "The witness"
	}
	return fmt.Sprintf(
		"%s has been with %s for %d years as a %s. "+
			"During their tenure, they %s. "+
			"Their responsibilities included %s. "+
			"When questioned about suspicious activities, %s. "+
			"Their security record shows %s.",
		name, company, years, w.Role,
		w.Achievement, w.Responsibility, w.SuspiciousActivity, w.SecurityRecord,
	)
}
