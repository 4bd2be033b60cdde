package models

// Severity ranks how urgently a debt category should be addressed.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Weight returns a numeric weight for sorting.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// DebtType describes one entry of the debt taxonomy. The table is consumed
// read-only for presentation; the pipeline itself needs only label -> name.
type DebtType struct {
	Label       string      `json:"label"`
	Name        string      `json:"name"`
	Granularity Granularity `json:"granularity"`
	Severity    Severity    `json:"severity"`
	Description string      `json:"description"`
}

var taxonomy = map[string]DebtType{
	LabelNoSmell: {
		Label:       LabelNoSmell,
		Name:        "No Smell",
		Severity:    SeverityLow,
		Description: "No structural quality issue detected",
	},
	LabelBlob: {
		Label:       LabelBlob,
		Name:        "Blob",
		Granularity: GranularityClass,
		Severity:    SeverityCritical,
		Description: "A class that centralizes too much behavior and knows too much",
	},
	LabelDataClass: {
		Label:       LabelDataClass,
		Name:        "Data Class",
		Granularity: GranularityClass,
		Severity:    SeverityMedium,
		Description: "A class that holds data with trivial accessors and no behavior",
	},
	LabelFeatureEnvy: {
		Label:       LabelFeatureEnvy,
		Name:        "Feature Envy",
		Granularity: GranularityMethod,
		Severity:    SeverityHigh,
		Description: "A method more interested in other objects' data than its own",
	},
	LabelLongMethod: {
		Label:       LabelLongMethod,
		Name:        "Long Method",
		Granularity: GranularityMethod,
		Severity:    SeverityHigh,
		Description: "A method that has grown too long or too deeply branched",
	},
}

// DebtTypeFor looks up the taxonomy entry for a label.
func DebtTypeFor(label string) (DebtType, bool) {
	dt, ok := taxonomy[label]
	return dt, ok
}

// DebtName returns the display name for a label, or empty when the label
// has no taxonomy entry (UNKNOWN included).
func DebtName(label string) string {
	if dt, ok := taxonomy[label]; ok {
		return dt.Name
	}
	return ""
}

// Taxonomy returns all taxonomy entries in label order.
func Taxonomy() []DebtType {
	out := make([]DebtType, 0, len(taxonomy))
	for _, label := range []string{LabelNoSmell, LabelBlob, LabelDataClass, LabelFeatureEnvy, LabelLongMethod} {
		out = append(out, taxonomy[label])
	}
	return out
}
