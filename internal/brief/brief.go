// Package brief renders a generated case as a markdown briefing document.
// The output is plain markdown; terminal styling (glamour) is applied by the
// caller so the same brief can also be written to files or piped.
package brief

import (
	"fmt"
	"sort"
	"strings"

	"caseforge/internal/casegen"
)

// Markdown renders the full case briefing.
func Markdown(c *casegen.Case) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "**Type:** %s · **Case:** %s · **Difficulty:** %.2f\n\n", c.Type, c.Number, c.Difficulty)
	fmt.Fprintf(&b, "%s\n", c.Summary)

	if len(c.SpecialConditions) > 0 {
		fmt.Fprintf(&b, "\n> Special conditions: %s\n", strings.Join(c.SpecialConditions, ", "))
	}

	if len(c.Traits) > 0 {
		b.WriteString("\n## Case Traits\n\n")
		keys := make([]string, 0, len(c.Traits))
		for k := range c.Traits {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := c.Traits[k]
			if i, ok := v.Int(); ok {
				fmt.Fprintf(&b, "- %s: %d\n", k, i)
			} else if flag, ok := v.Bool(); ok {
				fmt.Fprintf(&b, "- %s: %v\n", k, flag)
			}
		}
	}

	b.WriteString("\n## Witnesses\n")
	for i, w := range c.Witnesses {
		name := w.Name
		if name == "" {
			name = fmt.Sprintf("Witness %d", i+1)
		}
		fmt.Fprintf(&b, "\n### %d. %s — %s\n\n", i+1, name, w.Role)
		if w.Relationship != "" {
			fmt.Fprintf(&b, "*Relationship:* %s\n\n", w.Relationship)
		}
		if w.Backstory != "" {
			fmt.Fprintf(&b, "%s\n", w.Backstory)
		}
	}

	b.WriteString("\n## Evidence\n\n")
	for i, e := range c.Evidence {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, e.Label, statusBadge(e.Status))
	}

	return b.String()
}

// Summary renders a one-line digest for list views.
func Summary(c *casegen.Case) string {
	return fmt.Sprintf("%s [%s] difficulty %.2f, %d witnesses, %d evidence items",
		c.Title, c.Type, c.Difficulty, len(c.Witnesses), len(c.Evidence))
}

func statusBadge(s casegen.AuthStatus) string {
	switch s {
	case casegen.AuthAuthenticated:
		return "(authenticated ✓)"
	case casegen.AuthRejected:
		return "(rejected ✗)"
	default:
		return "(pending)"
	}
}
