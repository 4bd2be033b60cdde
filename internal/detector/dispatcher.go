package detector

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/debtguard/debtguard/pkg/config"
	"github.com/debtguard/debtguard/pkg/models"
)

// Dispatcher routes units to the capability matching their granularity,
// scores each verdict, and drops no-smell results from the batch output.
type Dispatcher struct {
	cfg          config.DetectionConfig
	capabilities map[models.Granularity]Capability
}

// NewDispatcher builds a dispatcher over the given capabilities. A nil
// capability leaves its granularity unrouted; units of that granularity
// come back as UNKNOWN.
func NewDispatcher(cfg config.DetectionConfig, class, method Capability) *Dispatcher {
	caps := make(map[models.Granularity]Capability, 2)
	if class != nil {
		caps[models.GranularityClass] = class
	}
	if method != nil {
		caps[models.GranularityMethod] = method
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Dispatcher{cfg: cfg, capabilities: caps}
}

// DetectBatch runs detection over a batch of units and returns the scored
// results in submission order, with no-smell verdicts removed. One unit's
// failure never aborts the batch; it yields an UNKNOWN result carrying the
// error at zero confidence, which the confidence filter later discards.
func (d *Dispatcher) DetectBatch(ctx context.Context, units []*models.SourceUnit) []models.DetectionResult {
	if d.cfg.DedupeUnits {
		units = dedupeUnits(units)
	}
	if len(units) == 0 {
		return []models.DetectionResult{}
	}

	// Each unit owns a slot indexed by submission position, so parallel
	// completion order cannot reorder the batch.
	results := make([]models.DetectionResult, len(units))

	if d.cfg.Parallel && len(units) > 1 {
		p := pool.New().WithMaxGoroutines(d.cfg.Workers)
		for i, unit := range units {
			p.Go(func() {
				results[i] = d.detectOne(ctx, unit)
			})
		}
		p.Wait()
	} else {
		for i, unit := range units {
			results[i] = d.detectOne(ctx, unit)
		}
	}

	kept := make([]models.DetectionResult, 0, len(results))
	for _, r := range results {
		if r.Label == models.LabelNoSmell {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// detectOne dispatches a single unit and scores the verdict.
func (d *Dispatcher) detectOne(ctx context.Context, unit *models.SourceUnit) models.DetectionResult {
	result := models.DetectionResult{
		Name:        unit.Name,
		Granularity: unit.Granularity(),
		Metrics:     unit.Metrics,
		Unit:        unit,
	}

	capability, ok := d.capabilities[unit.Granularity()]
	if !ok {
		result.Label = models.LabelUnknown
		result.Confidence = 0.0
		result.Err = fmt.Sprintf("no %s detector configured", unit.Granularity())
		return result
	}

	resp, err := capability.Detect(ctx, unit)
	if err != nil {
		result.Label = models.LabelUnknown
		result.Confidence = 0.0
		result.Err = err.Error()
		return result
	}

	result.Label = resp.Label
	result.RawResponse = resp.Raw
	result.DebtType = models.DebtName(resp.Label)
	result.Confidence = Score(unit.Granularity(), resp.Label, unit.Metrics)
	return result
}

// dedupeUnits drops units whose identity tuple was already seen, keeping
// first occurrences in order. This suppresses the duplicate verdicts that
// class-nested methods otherwise produce when the same method also arrives
// as a standalone unit.
func dedupeUnits(units []*models.SourceUnit) []*models.SourceUnit {
	seen := make(map[uint64]struct{}, len(units))
	kept := make([]*models.SourceUnit, 0, len(units))
	for _, u := range units {
		key := xxhash.Sum64String(u.Identity())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, u)
	}
	return kept
}
