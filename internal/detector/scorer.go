package detector

import "github.com/debtguard/debtguard/pkg/models"

// Confidence tier values. Confidence is derived from structural metrics
// only; the detector's own certainty is never consulted.
const (
	confidenceHigh    = 0.9
	confidenceMedium  = 0.75
	confidenceLow     = 0.6
	confidenceUnknown = 0.5
)

// tier matches a metric bag against a threshold pair. The first matching
// tier wins; when none match the base confidence applies.
type tier struct {
	match      func(m models.Metrics) bool
	confidence float64
}

// tierKey addresses one smell category's tier list. Labels are disjoint
// across granularities today, but the lookup keeps both dimensions so a
// label can never match tiers of the wrong granularity.
type tierKey struct {
	granularity models.Granularity
	label       string
}

var scoringTiers = map[tierKey][]tier{
	{models.GranularityClass, models.LabelBlob}: {
		{func(m models.Metrics) bool { return m.LOC > 500 || m.MethodCount > 20 }, confidenceHigh},
		{func(m models.Metrics) bool { return m.LOC > 300 || m.MethodCount > 15 }, confidenceMedium},
	},
	{models.GranularityClass, models.LabelDataClass}: {
		{func(m models.Metrics) bool { return m.GetterSetterRatio > 0.8 }, confidenceHigh},
		{func(m models.Metrics) bool { return m.GetterSetterRatio > 0.6 }, confidenceMedium},
	},
	{models.GranularityMethod, models.LabelFeatureEnvy}: {
		{func(m models.Metrics) bool { return m.ExternalCalls >= 7 }, confidenceHigh},
		{func(m models.Metrics) bool { return m.ExternalCalls >= 5 }, confidenceMedium},
	},
	{models.GranularityMethod, models.LabelLongMethod}: {
		{func(m models.Metrics) bool { return m.LOC >= 25 || m.CyclomaticComplexity >= 15 }, confidenceHigh},
		{func(m models.Metrics) bool { return m.LOC >= 15 || m.CyclomaticComplexity >= 10 }, confidenceMedium},
	},
}

// Score derives a confidence value for a verdict given the unit's
// granularity and metrics. A no-smell verdict is always high confidence,
// an UNKNOWN verdict always sits at the filter boundary, and positive
// labels climb the metric tiers for their smell category.
func Score(granularity models.Granularity, label string, metrics models.Metrics) float64 {
	switch label {
	case models.LabelNoSmell:
		return confidenceHigh
	case models.LabelUnknown:
		return confidenceUnknown
	}

	for _, t := range scoringTiers[tierKey{granularity, label}] {
		if t.match(metrics) {
			return t.confidence
		}
	}
	return confidenceLow
}
