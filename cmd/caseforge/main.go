// Package main implements the caseforge CLI: procedural generation of
// investigative case files from a declarative template catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"caseforge/internal/catalog"
	"caseforge/internal/config"
	"caseforge/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "caseforge",
	Short: "caseforge - procedural investigative case generator",
	Long: `caseforge synthesizes complete investigative case files from a declarative
template catalog: a rendered title, a narrative summary, a roster of distinct
witnesses, a set of evidence items and a deterministic difficulty score.

All randomness flows through an explicit seed, so any generated case can be
reproduced exactly. Templates live in a YAML catalog (a built-in catalog is
baked into the binary) and generated cases can be archived to SQLite and
browsed with the docket TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := logging.Initialize(workspace); err != nil {
			logger.Warn("categorized logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadAppConfig resolves the effective configuration: --config if given,
// otherwise <workspace>/.caseforge/caseforge.yaml, otherwise defaults.
func loadAppConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workspace, ".caseforge", "caseforge.yaml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog builds the active template catalog: the configured external
// file when set, the embedded built-in catalog otherwise.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var f *catalog.File
	var err error
	if cfg.Catalog.Path != "" {
		f, err = catalog.Load(cfg.Catalog.Path)
	} else {
		f, err = catalog.LoadEmbedded()
	}
	if err != nil {
		return nil, err
	}
	return catalog.New(f), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", ".", "Workspace directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to caseforge.yaml (default <workspace>/.caseforge/caseforge.yaml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(docketCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
