// Package aggregate derives per-platform and global metrics from a batch of
// canonical asset records.
package aggregate

import (
	"strings"

	"stablecoin-view/internal/domain"
)

// Aggregate groups records by each entry of their network breakdown and sums
// the supply attributed to every platform. An asset listing several networks
// contributes to several platform groups: this is multi-membership
// aggregation, not a partition.
//
// Platform identity is keyed by the trimmed, case-insensitive platform name;
// the first-seen spelling is kept for display. Output order is first-seen
// order across the input sequence, so repeated calls on identical input
// yield identical ordering. Records without any named platform are excluded
// here but still count toward global metrics.
func Aggregate(records []*domain.AssetRecord) []*domain.PlatformAggregate {
	byKey := make(map[string]*domain.PlatformAggregate)
	order := make([]string, 0)

	for _, rec := range records {
		if rec == nil {
			continue
		}
		// An asset counts once per platform even when its breakdown
		// lists the same network twice.
		counted := make(map[string]bool)

		for _, entry := range rec.NetworkBreakdown {
			name := strings.TrimSpace(entry.Network)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)

			agg, exists := byKey[key]
			if !exists {
				agg = &domain.PlatformAggregate{PlatformName: name}
				byKey[key] = agg
				order = append(order, key)
			}

			agg.TotalSupply += supplyContribution(rec, entry)
			if !counted[key] {
				agg.EntityCount++
				counted[key] = true
			}
		}
	}

	out := make([]*domain.PlatformAggregate, 0, len(order))
	var globalSupply float64
	for _, key := range order {
		globalSupply += byKey[key].TotalSupply
		out = append(out, byKey[key])
	}

	if globalSupply > 0 {
		for _, agg := range out {
			share := agg.TotalSupply / globalSupply * 100
			agg.SharePercentOfGlobal = &share
		}
	}

	return out
}

// supplyContribution resolves how much supply a record attributes to one
// platform entry: the explicit per-network supply when present, else the
// circulating supply apportioned by share percent, else zero.
func supplyContribution(rec *domain.AssetRecord, entry domain.NetworkSupply) float64 {
	if entry.Supply != nil {
		return *entry.Supply
	}
	if entry.SharePercent != nil && rec.CirculatingSupply != nil {
		return *rec.CirculatingSupply * *entry.SharePercent / 100
	}
	return 0
}

// ComputeGlobalMetrics sums market caps and circulating supplies across the
// batch. Absent values contribute nothing; every record counts.
func ComputeGlobalMetrics(records []*domain.AssetRecord) domain.GlobalMetrics {
	var metrics domain.GlobalMetrics
	for _, rec := range records {
		if rec == nil {
			continue
		}
		metrics.AssetCount++
		if rec.MarketCap != nil {
			metrics.TotalMarketCap += *rec.MarketCap
		}
		if rec.CirculatingSupply != nil {
			metrics.TotalSupply += *rec.CirculatingSupply
		}
	}
	return metrics
}
