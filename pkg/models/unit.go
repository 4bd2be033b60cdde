// Package models defines the data types shared across the analysis pipeline.
package models

import (
	"fmt"

	"github.com/zeebo/blake3"
)

// UnitKind distinguishes class slices from method slices.
type UnitKind string

const (
	UnitClass  UnitKind = "class"
	UnitMethod UnitKind = "method"
)

// Granularity indicates whether an analysis operates at class or method scope.
type Granularity string

const (
	GranularityClass  Granularity = "class"
	GranularityMethod Granularity = "method"
)

// Metrics is the structural metric bag attached to a unit at extraction
// time. It is never mutated afterwards. Class and method units populate
// disjoint subsets of the fields.
type Metrics struct {
	LOC int `json:"loc"`

	// Class metrics
	MethodCount       int     `json:"method_count,omitempty"`
	FieldCount        int     `json:"field_count,omitempty"`
	IsAbstract        bool    `json:"is_abstract,omitempty"`
	GetterSetterRatio float64 `json:"getter_setter_ratio,omitempty"`

	// Method metrics
	ParameterCount       int `json:"parameter_count,omitempty"`
	CyclomaticComplexity int `json:"cyclomatic_complexity,omitempty"`
	ExternalCalls        int `json:"external_calls,omitempty"`
}

// SourceUnit is a class or method slice extracted from source text.
// Units are immutable once created; detection reads them but never writes.
type SourceUnit struct {
	Kind     UnitKind `json:"kind"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	FilePath string   `json:"file_path"`
	Metrics  Metrics  `json:"metrics"`

	// ParentClass is a lookup-only back-reference for nested methods.
	ParentClass string `json:"parent_class,omitempty"`

	// Methods holds the nested method units of a class unit.
	Methods []*SourceUnit `json:"methods,omitempty"`

	// StartOffset and EndOffset are byte positions of the unit's text in
	// the full file, when known. Used for identity, not for extraction.
	StartOffset int `json:"start_offset"`
	EndOffset   int `json:"end_offset"`

	// ContentHash is a BLAKE3 hash of the unit's code text.
	ContentHash string `json:"content_hash,omitempty"`
}

// Granularity maps the unit kind to its detection granularity.
func (u *SourceUnit) Granularity() Granularity {
	if u.Kind == UnitClass {
		return GranularityClass
	}
	return GranularityMethod
}

// Identity returns the unit's identity tuple as a single string:
// file path, name, and byte span.
func (u *SourceUnit) Identity() string {
	return fmt.Sprintf("%s\x00%s\x00%d:%d", u.FilePath, u.Name, u.StartOffset, u.EndOffset)
}

// HashContent computes and stores the BLAKE3 content hash.
func (u *SourceUnit) HashContent() {
	sum := blake3.Sum256([]byte(u.Code))
	u.ContentHash = fmt.Sprintf("%x", sum[:8])
}

// SliceStrategy records which extraction path handled a file.
type SliceStrategy string

const (
	StrategyStructural SliceStrategy = "structural"
	StrategyFallback   SliceStrategy = "fallback"
)

// SliceResult is the output of slicing one file: ordered class units (each
// owning its nested methods) and ordered standalone method units.
type SliceResult struct {
	FilePath string        `json:"file_path"`
	Classes  []*SourceUnit `json:"classes"`
	Methods  []*SourceUnit `json:"methods"`
	TotalLOC int           `json:"total_loc"`
	Strategy SliceStrategy `json:"strategy"`
}
