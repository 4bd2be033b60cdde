package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/debtguard/debtguard/pkg/models"
)

func TestFilterByConfidence(t *testing.T) {
	results := []models.DetectionResult{
		{Name: "a", Confidence: 0.9},
		{Name: "b", Confidence: 0.4},
		{Name: "c", Confidence: 0.5},
		{Name: "d", Confidence: 0.0},
	}

	filtered := FilterByConfidence(results, 0.5)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Name)
	assert.Equal(t, "c", filtered[1].Name)
}

func TestFilterByConfidenceIdempotent(t *testing.T) {
	results := []models.DetectionResult{
		{Name: "a", Confidence: 0.9},
		{Name: "b", Confidence: 0.6},
		{Name: "c", Confidence: 0.2},
	}

	once := FilterByConfidence(results, 0.5)
	twice := FilterByConfidence(once, 0.5)
	assert.Equal(t, once, twice)
}

func TestFilterByConfidenceEmpty(t *testing.T) {
	assert.Empty(t, FilterByConfidence(nil, 0.5))
}
