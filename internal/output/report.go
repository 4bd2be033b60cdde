package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/debtguard/debtguard/pkg/models"
)

// FileReport builds a renderable report for one analyzed file.
func FileReport(analysis *models.FileAnalysis) Renderable {
	report := &Report{
		Title: "Debt Report: " + analysis.FilePath,
		Data:  analysis,
	}

	if analysis.Failed() {
		report.Sections = append(report.Sections, &Section{
			Title:   "Analysis Failed",
			Content: analysis.Err,
		})
		return report
	}

	report.Sections = append(report.Sections,
		debtTable(analysis.Debts),
		&Section{
			Title: "Summary",
			Content: fmt.Sprintf(
				"Detections: %d   Above threshold: %d   High confidence: %d   Strategy: %s",
				analysis.TotalDetections,
				analysis.FilteredDetections,
				analysis.Summary.HighConfidence,
				analysis.Strategy,
			),
		},
	)
	return report
}

// RepoReport builds a renderable report for a repository run.
func RepoReport(repo *models.RepoAnalysis) Renderable {
	report := &Report{
		Title: "Debt Report: " + repo.Root,
		Data:  repo,
	}

	var debts []models.DetectionResult
	for i := range repo.Files {
		debts = append(debts, repo.Files[i].Debts...)
	}
	report.Sections = append(report.Sections, debtTable(debts))

	report.Sections = append(report.Sections, byTypeTable(repo.Summary.ByType))

	content := fmt.Sprintf(
		"Files: %d analyzed, %d failed of %d\nDebts: %d total, %d high confidence, %d files affected\nAverage debts per file: %.2f",
		repo.AnalyzedFiles, repo.FailedFiles, repo.TotalFiles,
		repo.Summary.TotalDebts, repo.Summary.HighConfidence, repo.Summary.FilesWithDebts,
		repo.Summary.AverageDebtsPerFile,
	)
	if c := repo.Summary.Confidence; c != nil {
		content += fmt.Sprintf("\nConfidence: mean %.2f, p50 %.2f, p90 %.2f", c.Mean, c.P50, c.P90)
	}
	report.Sections = append(report.Sections, &Section{Title: "Summary", Content: content})

	return report
}

// SliceReport builds a renderable report for slicing output alone.
func SliceReport(result *models.SliceResult) Renderable {
	rows := make([][]string, 0, len(result.Classes)+len(result.Methods))
	for _, class := range result.Classes {
		rows = append(rows, []string{
			string(class.Kind), class.Name,
			fmt.Sprintf("%d", class.Metrics.LOC),
			fmt.Sprintf("%d methods", class.Metrics.MethodCount),
		})
		for _, m := range class.Methods {
			rows = append(rows, []string{
				string(m.Kind), class.Name + "." + m.Name,
				fmt.Sprintf("%d", m.Metrics.LOC),
				fmt.Sprintf("cc %d", m.Metrics.CyclomaticComplexity),
			})
		}
	}
	for _, m := range result.Methods {
		rows = append(rows, []string{
			string(m.Kind), m.Name,
			fmt.Sprintf("%d", m.Metrics.LOC), "",
		})
	}

	return &Table{
		Title:   fmt.Sprintf("Slices: %s (%s, %d LOC)", result.FilePath, result.Strategy, result.TotalLOC),
		Headers: []string{"Kind", "Name", "LOC", "Detail"},
		Rows:    rows,
		Data:    result,
	}
}

// TaxonomyTable lists the debt categories the detectors can answer with.
func TaxonomyTable(colored bool) Renderable {
	entries := models.Taxonomy()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		severity := string(e.Severity)
		if colored {
			severity = SeverityColor(string(e.Severity), severity)
		}
		granularity := string(e.Granularity)
		if granularity == "" {
			granularity = "any"
		}
		rows = append(rows, []string{e.Label, e.Name, granularity, severity, e.Description})
	}

	return &Table{
		Title:   "Debt Taxonomy",
		Headers: []string{"Label", "Name", "Granularity", "Severity", "Description"},
		Rows:    rows,
		Data:    entries,
	}
}

// debtTable renders filtered detections, one row per debt.
func debtTable(debts []models.DetectionResult) *Table {
	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		location := ""
		if d.Location != nil && d.Location.Err == "" {
			location = fmt.Sprintf("%d-%d", d.Location.StartLine, d.Location.EndLine)
			if d.Location.Approximate {
				location = "~" + location
			}
		}
		name := d.DebtType
		if name == "" {
			name = d.Label
		}
		rows = append(rows, []string{
			name,
			string(d.Granularity),
			d.Name,
			fmt.Sprintf("%.2f", d.Confidence),
			location,
		})
	}

	return &Table{
		Title:   "Detected Debts",
		Headers: []string{"Type", "Granularity", "Unit", "Confidence", "Lines"},
		Rows:    rows,
		Footer:  []string{"Total", "", "", fmt.Sprintf("%d", len(debts)), ""},
	}
}

// byTypeTable renders the per-category counts sorted by count descending.
func byTypeTable(byType map[string]int) *Table {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(byType))
	for name, count := range byType {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return strings.Compare(entries[i].name, entries[j].name) < 0
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.name, fmt.Sprintf("%d", e.count)})
	}
	return &Table{
		Title:   "Debts By Type",
		Headers: []string{"Type", "Count"},
		Rows:    rows,
	}
}
