package domain

// GlobalMetrics summarizes an entire batch of canonical records.
type GlobalMetrics struct {
	TotalMarketCap float64 `json:"totalMarketCap"`
	TotalSupply    float64 `json:"totalSupply"`
	AssetCount     int     `json:"assetCount"`
}

// ViewModelBundle is the complete display-ready snapshot produced by one
// transformation cycle: items in input order plus metrics and platform
// aggregates derived from those same items.
type ViewModelBundle struct {
	Items        []*AssetRecord       `json:"items"`
	Metrics      GlobalMetrics        `json:"metrics"`
	PlatformData []*PlatformAggregate `json:"platformData"`
}
