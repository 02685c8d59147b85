// Catalog commands: inspect and validate the template catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"caseforge/internal/casegen"
	"caseforge/internal/catalog"

	"github.com/spf13/cobra"
)

// catalogCmd groups catalog operations
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the template catalog",
}

// catalogListCmd lists the active templates
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active case templates",
	RunE:  runCatalogList,
}

// catalogValidateCmd validates a catalog file
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file without generating anything",
	Long: `Parses a catalog file and surfaces template-authoring errors: empty
witness pools, evidence counts exceeding the label pool, missing summaries.
Without a path the configured catalog (or the embedded one) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

// catalogWatchCmd watches a catalog file and reports reloads
var catalogWatchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Watch a catalog file and validate it on every change",
	Long: `Hot-reloads the catalog whenever the file changes, keeping the last good
template set when a reload fails. Useful while editing templates. Stop with
Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogWatch,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogWatchCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	templates := cat.Snapshot()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Active catalog: %d templates", len(templates))))
	fmt.Println(strings.Repeat("─", 60))

	for i, tpl := range templates {
		score := casegen.Score(tpl.Complexity, tpl.CaseSpecificTraits, tpl.DifficultyModifiers)
		fmt.Printf("%2d. %-14s %s…%s\n", i+1, tpl.Type, tpl.TitlePrefix, tpl.TitleSuffix)
		fmt.Printf("    %s\n", dimStyle.Render(fmt.Sprintf(
			"witnesses: %d  evidence: %d/%d  complexity: %d  difficulty: %.2f",
			tpl.NumWitnesses, tpl.NumEvidence, len(tpl.EvidenceTemplates),
			tpl.Complexity, score)))
		if len(tpl.SpecialConditions) > 0 {
			fmt.Printf("    %s\n", dimStyle.Render("conditions: "+strings.Join(tpl.SpecialConditions, ", ")))
		}
	}
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	var f *catalog.File
	var err error
	var source string

	if len(args) == 1 {
		source = args[0]
		f, err = catalog.Load(source)
	} else {
		cfg, cfgErr := loadAppConfig()
		if cfgErr != nil {
			return cfgErr
		}
		if cfg.Catalog.Path != "" {
			source = cfg.Catalog.Path
			f, err = catalog.Load(source)
		} else {
			source = "embedded catalog"
			f, err = catalog.LoadEmbedded()
		}
	}
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ %s: %d templates OK\n", source, len(f.Templates))
	return nil
}

func runCatalogWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := catalog.Load(path)
	if err != nil {
		return err
	}
	cat := catalog.New(f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := cat.Watch(ctx, path); err != nil {
		return err
	}

	fmt.Printf("Watching %s (%d templates). Ctrl+C to stop.\n", path, cat.Len())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nStopped.")
	return nil
}
