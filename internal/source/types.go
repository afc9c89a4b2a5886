// Package source fetches market, supply and metadata feeds from upstream
// providers and assembles the aggregated per-asset DTOs consumed by the
// transformation pipeline.
package source

// MarketQuote is one asset's market data as served by the market provider.
type MarketQuote struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Price            *float64 `json:"price"`
	MarketCap        *float64 `json:"marketCap"`
	Volume24h        *float64 `json:"volume24h"`
	PercentChange24h *float64 `json:"percentChange24h"`
	Rank             *int     `json:"rank"`
	ImageURL         string   `json:"imageUrl"`
}

// NetworkSupplyEntry is one per-network supply line of a supply report.
type NetworkSupplyEntry struct {
	Network         string   `json:"network"`
	Supply          *float64 `json:"supply"`
	SharePercent    *float64 `json:"sharePercent"`
	ContractAddress string   `json:"contractAddress,omitempty"`
}

// SupplyReport is one asset's supply data as served by the supply provider.
type SupplyReport struct {
	Symbol            string               `json:"symbol"`
	CirculatingSupply *float64             `json:"circulatingSupply"`
	TotalSupply       *float64             `json:"totalSupply"`
	NetworkBreakdown  []NetworkSupplyEntry `json:"networkBreakdown"`
}

// AssetMetadata is one asset's descriptive data as served by the metadata
// provider.
type AssetMetadata struct {
	Symbol      string   `json:"symbol"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// LegacySupplyReport is the older explorer supply shape still emitted by
// some providers: stringly-typed totals and a flat platforms map instead of
// a breakdown sequence.
type LegacySupplyReport struct {
	Symbol      string            `json:"symbol"`
	Circulating string            `json:"circulating"`
	Total       string            `json:"total"`
	Platforms   map[string]string `json:"platforms"`
	Contracts   map[string]string `json:"contracts,omitempty"`
}
