package models

import "time"

// Label values returned by detectors. Class detectors answer from
// {"0","1","2"}, method detectors from {"0","3","4"}; anything a detector
// says that cannot be normalized becomes LabelUnknown.
const (
	LabelNoSmell     = "0"
	LabelBlob        = "1"
	LabelDataClass   = "2"
	LabelFeatureEnvy = "3"
	LabelLongMethod  = "4"
	LabelUnknown     = "UNKNOWN"
)

// Location maps a detection back to line numbers in the original file.
// Approximate is set when only the declaration header could be found, in
// which case EndLine is an estimate. Err is set when localization failed
// entirely; the detection is kept either way.
type Location struct {
	StartLine   int    `json:"start_line,omitempty"`
	EndLine     int    `json:"end_line,omitempty"`
	Approximate bool   `json:"approximate,omitempty"`
	Err         string `json:"error,omitempty"`
}

// DetectionResult is one detector verdict for one unit. Confidence is
// always derived from the metric tier table, never taken from the detector.
type DetectionResult struct {
	Name        string      `json:"name"`
	Granularity Granularity `json:"granularity"`
	Label       string      `json:"label"`
	DebtType    string      `json:"debt_type,omitempty"`
	Confidence  float64     `json:"confidence"`
	Metrics     Metrics     `json:"metrics"`
	RawResponse string      `json:"raw_response,omitempty"`
	Location    *Location   `json:"location,omitempty"`
	Err         string      `json:"error,omitempty"`

	// Unit keeps the analyzed slice reachable for localization.
	Unit *SourceUnit `json:"-"`
}

// FileSummary aggregates the filtered detections of one file.
type FileSummary struct {
	TotalDebts     int            `json:"total_debts"`
	ByType         map[string]int `json:"by_type"`
	ByGranularity  map[string]int `json:"by_granularity"`
	HighConfidence int            `json:"high_confidence"`
}

// NewFileSummary creates an initialized summary.
func NewFileSummary() FileSummary {
	return FileSummary{
		ByType:        make(map[string]int),
		ByGranularity: map[string]int{string(GranularityClass): 0, string(GranularityMethod): 0},
	}
}

// AddDetection updates the summary with one filtered detection.
func (s *FileSummary) AddDetection(d DetectionResult) {
	s.TotalDebts++
	name := d.DebtType
	if name == "" {
		name = LabelUnknown
	}
	s.ByType[name]++
	if _, ok := s.ByGranularity[string(d.Granularity)]; ok {
		s.ByGranularity[string(d.Granularity)]++
	}
	if d.Confidence >= 0.8 {
		s.HighConfidence++
	}
}

// FileAnalysis is the full result of analyzing one file.
// TotalDetections counts results before confidence filtering (no-smell
// results are already removed at batch collection); Debts holds the
// filtered detections.
type FileAnalysis struct {
	FilePath           string            `json:"file_path"`
	TotalDetections    int               `json:"total_detections"`
	FilteredDetections int               `json:"filtered_detections"`
	Debts              []DetectionResult `json:"debts"`
	Summary            FileSummary       `json:"summary"`
	Strategy           SliceStrategy     `json:"strategy,omitempty"`
	AnalyzedAt         time.Time         `json:"analyzed_at"`
	Err                string            `json:"error,omitempty"`
}

// Failed reports whether the file's pipeline failed before detection.
func (a *FileAnalysis) Failed() bool {
	return a.Err != ""
}

// ConfidenceStats summarizes the confidence distribution of the filtered
// detections across a repository.
type ConfidenceStats struct {
	Mean float64 `json:"mean"`
	P50  float64 `json:"p50"`
	P90  float64 `json:"p90"`
}

// RepoSummary aggregates file summaries across a repository run.
type RepoSummary struct {
	TotalDebts          int              `json:"total_debts"`
	ByType              map[string]int   `json:"by_type"`
	ByGranularity       map[string]int   `json:"by_granularity"`
	HighConfidence      int              `json:"high_confidence"`
	FilesWithDebts      int              `json:"files_with_debts"`
	AverageDebtsPerFile float64          `json:"average_debts_per_file"`
	Confidence          *ConfidenceStats `json:"confidence,omitempty"`
}

// NewRepoSummary creates an initialized repository summary.
func NewRepoSummary() RepoSummary {
	return RepoSummary{
		ByType:        make(map[string]int),
		ByGranularity: map[string]int{string(GranularityClass): 0, string(GranularityMethod): 0},
	}
}

// RepoAnalysis is the result of analyzing a set of files. Failed files are
// recorded in Files with Err set and counted in FailedFiles; they do not
// contribute to Summary.
type RepoAnalysis struct {
	Root          string         `json:"root,omitempty"`
	TotalFiles    int            `json:"total_files"`
	AnalyzedFiles int            `json:"analyzed_files"`
	FailedFiles   int            `json:"failed_files"`
	Files         []FileAnalysis `json:"files"`
	Summary       RepoSummary    `json:"summary"`
	AnalyzedAt    time.Time      `json:"analyzed_at"`
}
