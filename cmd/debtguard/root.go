package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debtguard/debtguard/pkg/config"
)

var (
	cfgFile    string
	formatFlag string
	outputFile string
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "debtguard",
	Short: "Structural technical debt detection for Java codebases",
	Long: `Debtguard slices Java source into class and method units, asks
language-model detectors whether each unit carries a known debt category
(Blob, Data Class, Feature Envy, Long Method), scores each verdict
against structural metrics, and reports the debts that survive the
confidence filter.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: text, json, or markdown")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}

// loadConfig resolves the effective config: explicit file, discovered
// file, or defaults, with CLI flags layered on top.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", cfgFile, err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault()
	}

	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if noColor {
		cfg.Output.Color = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	return cfg, nil
}
