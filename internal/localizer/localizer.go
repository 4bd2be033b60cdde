// Package localizer maps detected units back to line numbers in their
// original file.
package localizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/debtguard/debtguard/pkg/models"
)

// ErrNotLocalized indicates neither the exact nor the approximate match
// found the unit. The detection is kept; only its location is missing.
var ErrNotLocalized = errors.New("unit could not be located")

// Locate resolves a unit's line span in the full source text. It tries an
// exact match on the unit's first code line, then an approximate match on
// the declaration header, and reports an error location when both miss.
// Lines are 1-indexed.
func Locate(unit *models.SourceUnit, source string) models.Location {
	lines := strings.Split(source, "\n")
	unitLines := len(strings.Split(unit.Code, "\n"))

	if loc, ok := exactMatch(unit, lines, unitLines); ok {
		return loc
	}
	if loc, ok := declarationMatch(unit, lines, unitLines); ok {
		return loc
	}

	return models.Location{
		Err: fmt.Sprintf("%v: %s %q in %s", ErrNotLocalized, unit.Kind, unit.Name, unit.FilePath),
	}
}

// exactMatch scans for the unit's first non-blank code line.
func exactMatch(unit *models.SourceUnit, lines []string, unitLines int) (models.Location, bool) {
	first := firstCodeLine(unit.Code)
	if first == "" {
		return models.Location{}, false
	}

	for i, line := range lines {
		if strings.Contains(line, first) {
			return models.Location{
				StartLine: i + 1,
				EndLine:   i + unitLines,
			}, true
		}
	}
	return models.Location{}, false
}

// declarationMatch falls back to a declaration header pattern. The end
// line is an estimate: the unit's own line count past the start line,
// not the inclusive span the exact match computes.
func declarationMatch(unit *models.SourceUnit, lines []string, unitLines int) (models.Location, bool) {
	var re *regexp.Regexp
	if unit.Kind == models.UnitClass {
		re = regexp.MustCompile(`class\s+` + regexp.QuoteMeta(unit.Name) + `\b`)
	} else {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(unit.Name) + `\s*\(`)
	}

	for i, line := range lines {
		if re.MatchString(line) {
			return models.Location{
				StartLine:   i + 1,
				EndLine:     i + 1 + unitLines,
				Approximate: true,
			}, true
		}
	}
	return models.Location{}, false
}

// firstCodeLine returns the first non-blank, non-comment line of the
// unit's text, trimmed.
func firstCodeLine(code string) string {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		return trimmed
	}
	return ""
}
