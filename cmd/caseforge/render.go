// Terminal rendering helpers shared by the generate, archive and catalog
// commands.
package main

import (
	"fmt"

	"caseforge/internal/brief"
	"caseforge/internal/casegen"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printBrief renders a case briefing to the terminal. With --plain the raw
// markdown is printed unstyled, which keeps output pipeable.
func printBrief(c *casegen.Case) error {
	md := brief.Markdown(c)
	if genPlain {
		fmt.Println(md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Styling is best-effort; fall back to raw markdown.
		fmt.Println(md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Println(md)
		return nil
	}
	fmt.Print(out)
	return nil
}
