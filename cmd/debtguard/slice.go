package main

import (
	"github.com/spf13/cobra"

	"github.com/debtguard/debtguard/internal/output"
	"github.com/debtguard/debtguard/pkg/slicer"
)

var sliceCmd = &cobra.Command{
	Use:   "slice <file>",
	Short: "Slice a source file into class and method units without running detection",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := slicer.New(cfg.Slicer).SliceFile(args[0])
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), outputFile, cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(output.SliceReport(result))
}
