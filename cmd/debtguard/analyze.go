package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/debtguard/debtguard/internal/analyzer"
	"github.com/debtguard/debtguard/internal/output"
	"github.com/debtguard/debtguard/internal/progress"
	"github.com/debtguard/debtguard/internal/vcs"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path|url>",
	Short: "Detect technical debt in a file, directory, or remote repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("ref", "", "Branch or tag to check out when analyzing a remote repository")
	analyzeCmd.Flags().Bool("parallel", false, "Dispatch detection requests concurrently")
	analyzeCmd.Flags().Float64("min-confidence", -1, "Override the confidence threshold")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if parallel, _ := cmd.Flags().GetBool("parallel"); parallel {
		cfg.Detection.Parallel = true
	}
	if mc, _ := cmd.Flags().GetFloat64("min-confidence"); mc >= 0 {
		cfg.Detection.MinConfidence = mc
	}

	target := args[0]
	if vcs.IsRemote(target) {
		ref, _ := cmd.Flags().GetString("ref")
		dir, cleanup, err := vcs.Clone(cmd.Context(), target, vcs.CloneOptions{Ref: ref})
		if err != nil {
			return err
		}
		defer cleanup()
		target = dir
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), outputFile, cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	a := analyzer.New(cfg)

	if !info.IsDir() {
		analysis := a.AnalyzeFile(cmd.Context(), target)
		if analysis.Failed() {
			formatter.Error("analysis failed: %s", analysis.Err)
		}
		return formatter.Output(output.FileReport(analysis))
	}

	showProgress := cfg.Output.Format == "text" && outputFile == ""
	tracker := progress.NewTracker(0, "Analyzing...", false)
	repo, err := a.AnalyzeRepositoryWithProgress(cmd.Context(), target, func(done, total int, current string) {
		if showProgress && tracker != nil {
			// The file count is only known after scanning, so the bar is
			// created on first callback.
			if done == 1 {
				tracker = progress.NewTracker(total, "Analyzing...", true)
			}
			tracker.Describe(current)
			tracker.Increment()
		}
	})
	if err != nil {
		return err
	}
	tracker.Finish()

	if repo.Summary.TotalDebts == 0 && cfg.Output.Format == "text" && outputFile == "" {
		color.Green("No technical debt detected in %d files", repo.AnalyzedFiles)
		return nil
	}
	return formatter.Output(output.RepoReport(repo))
}
