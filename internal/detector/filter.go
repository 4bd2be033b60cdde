package detector

import "github.com/debtguard/debtguard/pkg/models"

// FilterByConfidence keeps only detections at or above the threshold,
// preserving order. The operation is idempotent: filtering an already
// filtered slice with the same threshold returns the same detections.
func FilterByConfidence(results []models.DetectionResult, minConfidence float64) []models.DetectionResult {
	filtered := make([]models.DetectionResult, 0, len(results))
	for _, r := range results {
		if r.Confidence >= minConfidence {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
