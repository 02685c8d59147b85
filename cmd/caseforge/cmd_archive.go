// Archive commands: list, show and summarize archived cases.
package main

import (
	"fmt"
	"strings"

	"caseforge/internal/archive"
	"caseforge/internal/brief"

	"github.com/spf13/cobra"
)

var archiveLimit int

// archiveCmd groups archive operations
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse the archive of generated cases",
}

// archiveListCmd lists archived cases
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived cases, newest first",
	RunE:  runArchiveList,
}

// archiveShowCmd shows one archived case
var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render the full briefing of an archived case",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

// archiveStatsCmd summarizes the archive
var archiveStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archived case counts per type",
	RunE:  runArchiveStats,
}

func init() {
	archiveListCmd.Flags().IntVar(&archiveLimit, "limit", 20, "Maximum cases to list")
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveStatsCmd)
}

func openArchive() (*archive.Store, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}
	return archive.NewStore(cfg.Archive.DatabasePath)
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(archiveLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Archive is empty. Generate with --save to fill it.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Archived cases (%d)", len(records))))
	fmt.Println(strings.Repeat("─", 60))
	for _, rec := range records {
		fmt.Printf("%s  %s\n", rec.CreatedAt.Format("2006-01-02 15:04"), brief.Summary(&rec.Case))
		fmt.Printf("  %s\n", dimStyle.Render("id: "+rec.ID+"  seed: "+fmt.Sprint(rec.Seed)))
	}
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("case %s: %w", args[0], err)
	}
	return printBrief(&rec.Case)
}

func runArchiveStats(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.CountByType()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}
	total := 0
	for t, n := range counts {
		fmt.Printf("%-16s %d\n", t, n)
		total += n
	}
	fmt.Println(strings.Repeat("─", 24))
	fmt.Printf("%-16s %d\n", "total", total)
	return nil
}
