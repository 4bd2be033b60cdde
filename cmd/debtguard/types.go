package main

import (
	"github.com/spf13/cobra"

	"github.com/debtguard/debtguard/internal/output"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the debt categories the detectors can report",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), outputFile, cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	colored := cfg.Output.Color && cfg.Output.Format == "text" && outputFile == ""
	return formatter.Output(output.TaxonomyTable(colored))
}
