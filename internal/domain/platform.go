package domain

// PlatformAggregate is the derived per-network summary for one batch.
// Recomputed wholesale on every aggregation pass, never persisted.
type PlatformAggregate struct {
	PlatformName         string   `json:"platformName"`
	TotalSupply          float64  `json:"totalSupply"`
	EntityCount          int      `json:"entityCount"`
	SharePercentOfGlobal *float64 `json:"sharePercentOfGlobal,omitempty"`
}
