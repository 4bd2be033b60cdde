package analyzer

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/debtguard/debtguard/pkg/models"
)

// Aggregate folds per-file summaries into a repository summary. Failed
// files contribute nothing; the average is over successfully analyzed
// files and is zero when there are none.
func Aggregate(files []models.FileAnalysis) models.RepoSummary {
	summary := models.NewRepoSummary()

	analyzed := 0
	var confidences []float64

	for i := range files {
		f := &files[i]
		if f.Failed() {
			continue
		}
		analyzed++

		summary.TotalDebts += f.Summary.TotalDebts
		summary.HighConfidence += f.Summary.HighConfidence
		if f.Summary.TotalDebts > 0 {
			summary.FilesWithDebts++
		}
		for name, n := range f.Summary.ByType {
			summary.ByType[name] += n
		}
		for g, n := range f.Summary.ByGranularity {
			summary.ByGranularity[g] += n
		}
		for _, d := range f.Debts {
			confidences = append(confidences, d.Confidence)
		}
	}

	if analyzed > 0 {
		summary.AverageDebtsPerFile = float64(summary.TotalDebts) / float64(analyzed)
	}
	summary.Confidence = confidenceStats(confidences)

	return summary
}

// confidenceStats computes the confidence distribution of the filtered
// detections. Nil when there are none.
func confidenceStats(confidences []float64) *models.ConfidenceStats {
	if len(confidences) == 0 {
		return nil
	}

	sorted := make([]float64, len(confidences))
	copy(sorted, confidences)
	sort.Float64s(sorted)

	return &models.ConfidenceStats{
		Mean: stat.Mean(sorted, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}
}
