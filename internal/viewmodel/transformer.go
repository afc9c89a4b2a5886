// Package viewmodel owns the transformation lifecycle: a Transformer ingests
// raw provider batches, keeps the current canonical record set, and exposes
// the complete display-ready bundle. One Transformer instance is a single
// logical writer; callers needing parallel pipelines create independent
// instances.
package viewmodel

import (
	"time"

	"go.uber.org/zap"

	"stablecoin-view/internal/aggregate"
	"stablecoin-view/internal/domain"
	"stablecoin-view/internal/normalize"
	"stablecoin-view/internal/observability"
)

// Transformer converts raw aggregated DTO batches into the view model.
// Zero state is EMPTY; a successful TransformData call moves it to
// POPULATED, fully replacing any prior batch.
type Transformer struct {
	normalizer *normalize.Normalizer
	logger     *zap.Logger

	records []*domain.AssetRecord
}

// TransformData validates that raw is a proper sequence, normalizes each
// element and stores the surviving canonical records in input order.
// Malformed elements are dropped silently; a malformed batch behaves as
// Reset. No partial state is ever retained.
func (t *Transformer) TransformData(raw any) {
	batch, ok := asSequence(raw)
	if !ok {
		t.logger.Debug("invalid batch input, resetting state")
		observability.RecordInvalidBatch()
		t.Reset()
		return
	}

	start := time.Now()
	records := make([]*domain.AssetRecord, 0, len(batch))
	dropped := 0
	for _, element := range batch {
		rec := t.normalizer.Normalize(element)
		if rec == nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	t.records = records
	observability.RecordTransform(len(records), dropped, time.Since(start).Seconds())
	t.logger.Debug("batch transformed",
		zap.Int("input", len(batch)),
		zap.Int("kept", len(records)),
		zap.Int("dropped", dropped))
}

// TransformedData returns the current canonical record sequence. In the
// EMPTY state it returns an empty slice, never nil.
func (t *Transformer) TransformedData() []*domain.AssetRecord {
	if t.records == nil {
		return []*domain.AssetRecord{}
	}
	return t.records
}

// CalculateAggregations derives platform aggregates from the current
// records. Valid in either state; EMPTY yields an empty sequence.
func (t *Transformer) CalculateAggregations() []*domain.PlatformAggregate {
	return aggregate.Aggregate(t.records)
}

// CompleteViewModel composes the bundle fresh from current state. Metrics
// and platform data are always derived from the current items, never a
// cached object from a prior cycle.
func (t *Transformer) CompleteViewModel() *domain.ViewModelBundle {
	return &domain.ViewModelBundle{
		Items:        t.TransformedData(),
		Metrics:      aggregate.ComputeGlobalMetrics(t.records),
		PlatformData: t.CalculateAggregations(),
	}
}

// Reset clears all stored records. Idempotent; always leaves the
// transformer in the EMPTY state.
func (t *Transformer) Reset() {
	t.records = nil
}

// ValidateInputData reports whether raw is a proper (possibly empty)
// sequence. Element shape is not inspected here; the normalizer tolerates
// malformed elements on its own.
func (t *Transformer) ValidateInputData(raw any) bool {
	_, ok := asSequence(raw)
	return ok
}

// asSequence widens the accepted batch shapes to []any. It is the single
// definition of what counts as a valid batch; validation and transformation
// both go through it.
func asSequence(raw any) ([]any, bool) {
	switch batch := raw.(type) {
	case []any:
		return batch, true
	case []map[string]any:
		out := make([]any, len(batch))
		for i, m := range batch {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}
