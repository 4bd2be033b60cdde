package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/debtguard/debtguard/pkg/models"
)

func TestScoreNoSmell(t *testing.T) {
	assert.Equal(t, 0.9, Score(models.GranularityClass, models.LabelNoSmell, models.Metrics{}))
	assert.Equal(t, 0.9, Score(models.GranularityMethod, models.LabelNoSmell, models.Metrics{LOC: 9999}))
}

func TestScoreUnknown(t *testing.T) {
	assert.Equal(t, 0.5, Score(models.GranularityClass, models.LabelUnknown, models.Metrics{LOC: 1000}))
	assert.Equal(t, 0.5, Score(models.GranularityMethod, models.LabelUnknown, models.Metrics{}))
}

func TestScoreBlob(t *testing.T) {
	cases := []struct {
		name    string
		metrics models.Metrics
		want    float64
	}{
		{"huge by loc", models.Metrics{LOC: 501}, 0.9},
		{"huge by methods", models.Metrics{LOC: 100, MethodCount: 21}, 0.9},
		{"large", models.Metrics{LOC: 301}, 0.75},
		{"many methods", models.Metrics{LOC: 100, MethodCount: 16}, 0.75},
		{"borderline", models.Metrics{LOC: 300, MethodCount: 15}, 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(models.GranularityClass, models.LabelBlob, tc.metrics))
		})
	}
}

func TestScoreDataClass(t *testing.T) {
	assert.Equal(t, 0.9, Score(models.GranularityClass, models.LabelDataClass, models.Metrics{GetterSetterRatio: 0.85}))
	assert.Equal(t, 0.75, Score(models.GranularityClass, models.LabelDataClass, models.Metrics{GetterSetterRatio: 0.7}))
	assert.Equal(t, 0.6, Score(models.GranularityClass, models.LabelDataClass, models.Metrics{GetterSetterRatio: 0.5}))
}

func TestScoreFeatureEnvy(t *testing.T) {
	assert.Equal(t, 0.9, Score(models.GranularityMethod, models.LabelFeatureEnvy, models.Metrics{ExternalCalls: 7}))
	assert.Equal(t, 0.75, Score(models.GranularityMethod, models.LabelFeatureEnvy, models.Metrics{ExternalCalls: 5}))
	assert.Equal(t, 0.6, Score(models.GranularityMethod, models.LabelFeatureEnvy, models.Metrics{ExternalCalls: 4}))
}

func TestScoreLongMethod(t *testing.T) {
	assert.Equal(t, 0.9, Score(models.GranularityMethod, models.LabelLongMethod, models.Metrics{LOC: 25}))
	assert.Equal(t, 0.9, Score(models.GranularityMethod, models.LabelLongMethod, models.Metrics{LOC: 10, CyclomaticComplexity: 15}))
	assert.Equal(t, 0.75, Score(models.GranularityMethod, models.LabelLongMethod, models.Metrics{LOC: 20, CyclomaticComplexity: 12}))
	assert.Equal(t, 0.6, Score(models.GranularityMethod, models.LabelLongMethod, models.Metrics{LOC: 14, CyclomaticComplexity: 9}))
}

func TestScoreGranularityScopesTiers(t *testing.T) {
	// A label looked up under the wrong granularity matches no tier and
	// stays at the base confidence, however large the metrics.
	metrics := models.Metrics{LOC: 600, MethodCount: 30}
	assert.Equal(t, 0.9, Score(models.GranularityClass, models.LabelBlob, metrics))
	assert.Equal(t, 0.6, Score(models.GranularityMethod, models.LabelBlob, metrics))
}
