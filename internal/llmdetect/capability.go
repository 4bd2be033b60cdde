package llmdetect

import (
	"context"
	"strings"
	"time"

	"github.com/debtguard/debtguard/internal/detector"
	"github.com/debtguard/debtguard/pkg/config"
	"github.com/debtguard/debtguard/pkg/models"
)

// capability is one granularity's LLM classifier.
type capability struct {
	client      *Client
	granularity models.Granularity
	system      string
	fewShot     string
	normalize   func(string) string
}

// NewClassCapability builds the class-level classifier from its detector
// settings.
func NewClassCapability(cfg config.DetectorConfig) detector.Capability {
	return newCapability(cfg, models.GranularityClass, classSystemPrompt, classFewShot, NormalizeClassLabel)
}

// NewMethodCapability builds the method-level classifier.
func NewMethodCapability(cfg config.DetectorConfig) detector.Capability {
	return newCapability(cfg, models.GranularityMethod, methodSystemPrompt, methodFewShot, NormalizeMethodLabel)
}

func newCapability(cfg config.DetectorConfig, g models.Granularity, system, fewShot string, normalize func(string) string) detector.Capability {
	c := &capability{
		client:      NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Temperature, time.Duration(cfg.TimeoutSecs)*time.Second),
		granularity: g,
		system:      system,
		normalize:   normalize,
	}
	if cfg.Shot != "zero" {
		c.fewShot = fewShot
	}
	return c
}

// Detect classifies one unit. An empty or whitespace-only model answer is
// reported as ErrNoResponse so the dispatcher can isolate it.
func (c *capability) Detect(ctx context.Context, unit *models.SourceUnit) (detector.Response, error) {
	var prompt strings.Builder
	if c.fewShot != "" {
		prompt.WriteString(c.fewShot)
		prompt.WriteString("\n")
	}
	prompt.WriteString("Classify this code:\n")
	prompt.WriteString(unit.Code)

	raw, err := c.client.Complete(ctx, c.system, prompt.String())
	if err != nil {
		return detector.Response{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return detector.Response{}, detector.ErrNoResponse
	}

	return detector.Response{Label: c.normalize(raw), Raw: raw}, nil
}

// Granularity implements detector.Capability.
func (c *capability) Granularity() models.Granularity {
	return c.granularity
}

// NormalizeClassLabel maps free-form detector text onto the class label
// set. The first digit between 0 and 2 in the text wins; text with no
// such digit is UNKNOWN.
func NormalizeClassLabel(raw string) string {
	for _, ch := range raw {
		if ch >= '0' && ch <= '2' {
			return string(ch)
		}
	}
	return models.LabelUnknown
}

// NormalizeMethodLabel maps free-form detector text onto the method label
// set. Smell labels take precedence over no-smell, so an answer that
// mentions both resolves to the smell.
func NormalizeMethodLabel(raw string) string {
	if strings.ContainsRune(raw, '3') {
		return models.LabelFeatureEnvy
	}
	if strings.ContainsRune(raw, '4') {
		return models.LabelLongMethod
	}
	if strings.ContainsRune(raw, '0') {
		return models.LabelNoSmell
	}
	return models.LabelUnknown
}
