package slicer

import (
	"regexp"
	"strings"

	"github.com/debtguard/debtguard/pkg/models"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//.*`)
	externalCallRe = regexp.MustCompile(`\w+\.\w+\(`)

	complexityKeywordRes = []*regexp.Regexp{
		regexp.MustCompile(`\bif\b`),
		regexp.MustCompile(`\belse\b`),
		regexp.MustCompile(`\bfor\b`),
		regexp.MustCompile(`\bwhile\b`),
		regexp.MustCompile(`\bcase\b`),
		regexp.MustCompile(`\bcatch\b`),
	}
)

// CountLOC counts lines of code, excluding blank lines, line comments, and
// lines inside multi-line comment spans. The lines carrying the comment
// open and close tokens are themselves excluded.
func CountLOC(code string) int {
	loc := 0
	inMultiline := false

	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.Contains(stripped, "/*") {
			inMultiline = true
		}
		if strings.Contains(stripped, "*/") {
			inMultiline = false
			continue
		}
		if inMultiline {
			continue
		}

		if stripped != "" && !strings.HasPrefix(stripped, "//") {
			loc++
		}
	}

	return loc
}

// StripComments removes block and line comments from code.
func StripComments(code string) string {
	code = blockCommentRe.ReplaceAllString(code, "")
	return lineCommentRe.ReplaceAllString(code, "")
}

// EstimateComplexity approximates cyclomatic complexity: one plus the
// whole-word occurrences of branching keywords plus the boolean operators
// and ternary marks in the text.
func EstimateComplexity(code string) int {
	complexity := 1
	for _, re := range complexityKeywordRes {
		complexity += len(re.FindAllStringIndex(code, -1))
	}
	complexity += strings.Count(code, "&&")
	complexity += strings.Count(code, "||")
	complexity += strings.Count(code, "?")
	return complexity
}

// CountExternalCalls counts object.method( call sites after stripping
// comments from the method text.
func CountExternalCalls(code string) int {
	return len(externalCallRe.FindAllStringIndex(StripComments(code), -1))
}

// methodMetrics computes the full metric set for a method body.
func methodMetrics(code string, parameterCount int) models.Metrics {
	return models.Metrics{
		LOC:                  CountLOC(code),
		ParameterCount:       parameterCount,
		CyclomaticComplexity: EstimateComplexity(code),
		ExternalCalls:        CountExternalCalls(code),
	}
}

// countTrivialAccessors counts kept methods that look like getters or
// setters: a get/set/is name prefix and a body of at most three lines.
func countTrivialAccessors(methods []*models.SourceUnit) int {
	count := 0
	for _, m := range methods {
		name := m.Name
		if strings.HasPrefix(name, "get") || strings.HasPrefix(name, "set") || strings.HasPrefix(name, "is") {
			if m.Metrics.LOC <= 3 {
				count++
			}
		}
	}
	return count
}
