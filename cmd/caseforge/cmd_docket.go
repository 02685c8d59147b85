// Docket command: interactive TUI over the case archive.
package main

import (
	"caseforge/cmd/caseforge/docket"

	"github.com/spf13/cobra"
)

var docketLimit int

// docketCmd launches the docket TUI
var docketCmd = &cobra.Command{
	Use:   "docket",
	Short: "Browse archived cases interactively",
	Long: `Opens a full-screen browser over the case archive. Navigate with the
arrow keys, filter with /, press enter to read a full briefing and q to quit.`,
	RunE: runDocket,
}

func init() {
	docketCmd.Flags().IntVar(&docketLimit, "limit", 100, "Maximum cases to load into the docket")
}

func runDocket(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	return docket.Run(store, docketLimit)
}
