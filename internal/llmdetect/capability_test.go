package llmdetect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtguard/debtguard/internal/detector"
	"github.com/debtguard/debtguard/pkg/config"
	"github.com/debtguard/debtguard/pkg/models"
)

func TestNormalizeClassLabel(t *testing.T) {
	cases := map[string]string{
		"1":                        models.LabelBlob,
		"Answer: 2":                models.LabelDataClass,
		"the label is 0, no smell": models.LabelNoSmell,
		"label 3":                  models.LabelUnknown,
		"no idea":                  models.LabelUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeClassLabel(raw), "raw=%q", raw)
	}
}

func TestNormalizeMethodLabel(t *testing.T) {
	cases := map[string]string{
		"3":            models.LabelFeatureEnvy,
		"Answer: 4":    models.LabelLongMethod,
		"0":            models.LabelNoSmell,
		"0 but also 3": models.LabelFeatureEnvy,
		"maybe":        models.LabelUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeMethodLabel(raw), "raw=%q", raw)
	}
}

func chatServer(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: answer}})
		json.NewEncoder(w).Encode(resp)
	}))
}

func detectorConfig(url string) config.DetectorConfig {
	return config.DetectorConfig{
		Enabled:     true,
		Model:       "test-model",
		BaseURL:     url,
		APIKey:      "test-key",
		Shot:        "few",
		Temperature: 0.1,
		TimeoutSecs: 5,
	}
}

func TestClassCapabilityDetect(t *testing.T) {
	srv := chatServer(t, "Answer: 1")
	defer srv.Close()

	c := NewClassCapability(detectorConfig(srv.URL))
	assert.Equal(t, models.GranularityClass, c.Granularity())

	resp, err := c.Detect(context.Background(), &models.SourceUnit{
		Kind: models.UnitClass,
		Name: "Big",
		Code: "public class Big { }",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LabelBlob, resp.Label)
	assert.Equal(t, "Answer: 1", resp.Raw)
}

func TestMethodCapabilityDetect(t *testing.T) {
	srv := chatServer(t, "4")
	defer srv.Close()

	c := NewMethodCapability(detectorConfig(srv.URL))
	assert.Equal(t, models.GranularityMethod, c.Granularity())

	resp, err := c.Detect(context.Background(), &models.SourceUnit{
		Kind: models.UnitMethod,
		Name: "process",
		Code: "void process() { }",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LabelLongMethod, resp.Label)
}

func TestDetectEmptyAnswer(t *testing.T) {
	srv := chatServer(t, "   ")
	defer srv.Close()

	c := NewMethodCapability(detectorConfig(srv.URL))
	_, err := c.Detect(context.Background(), &models.SourceUnit{Name: "m", Code: "void m() {}"})
	assert.ErrorIs(t, err, detector.ErrNoResponse)
}

func TestDetectServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClassCapability(detectorConfig(srv.URL))
	_, err := c.Detect(context.Background(), &models.SourceUnit{Name: "C", Code: "class C {}"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}
