package source

import (
	"sort"
	"strconv"
	"strings"
)

// AdaptLegacySupply translates the legacy explorer supply shape into the
// current SupplyReport. The translation is pure: unparseable totals become
// nil and unparseable platform entries are skipped, so either shape can
// evolve without breaking the other side.
func AdaptLegacySupply(legacy LegacySupplyReport) SupplyReport {
	report := SupplyReport{
		Symbol:            strings.TrimSpace(legacy.Symbol),
		CirculatingSupply: parseAmount(legacy.Circulating),
		TotalSupply:       parseAmount(legacy.Total),
	}

	if len(legacy.Platforms) == 0 {
		return report
	}

	// Map iteration order is random; sort network names so the adapted
	// breakdown is deterministic.
	networks := make([]string, 0, len(legacy.Platforms))
	for network := range legacy.Platforms {
		networks = append(networks, network)
	}
	sort.Strings(networks)

	for _, network := range networks {
		name := strings.TrimSpace(network)
		if name == "" {
			continue
		}
		supply := parseAmount(legacy.Platforms[network])
		if supply == nil {
			continue
		}
		entry := NetworkSupplyEntry{
			Network: name,
			Supply:  supply,
		}
		if addr, ok := legacy.Contracts[network]; ok {
			entry.ContractAddress = strings.TrimSpace(addr)
		}
		report.NetworkBreakdown = append(report.NetworkBreakdown, entry)
	}

	return report
}

// parseAmount parses a legacy numeric string, tolerating thousands
// separators and surrounding whitespace.
func parseAmount(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
