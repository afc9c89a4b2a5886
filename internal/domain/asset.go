package domain

// AssetRecord is the canonical, provider-agnostic representation of one
// tracked asset. Optional numerics are pointers; nil means the source data
// did not carry the value.
type AssetRecord struct {
	ID                string          `json:"id,omitempty"`
	Name              string          `json:"name"`
	Symbol            string          `json:"symbol"` // always non-empty for a well-formed record
	Slug              string          `json:"slug"`
	ImageURL          *string         `json:"imageUrl,omitempty"`
	Price             *float64        `json:"price"`
	MarketCap         *float64        `json:"marketCap"`
	Volume24h         *float64        `json:"volume24h"`
	PercentChange24h  *float64        `json:"percentChange24h"`
	Rank              *int            `json:"rank"`
	CirculatingSupply *float64        `json:"circulatingSupply"`
	TotalSupply       *float64        `json:"totalSupply"`
	NetworkBreakdown  []NetworkSupply `json:"networkBreakdown"`
	Tags              []string        `json:"tags"`
	Description       *string         `json:"description,omitempty"`
	LogoURL           *string         `json:"logoUrl,omitempty"`
}

// NetworkSupply describes how much of an asset's supply lives on one
// blockchain network. Every field except Network may be absent.
type NetworkSupply struct {
	Network         string   `json:"network"`
	Supply          *float64 `json:"supply"`
	SharePercent    *float64 `json:"sharePercent"`
	ContractAddress *string  `json:"contractAddress,omitempty"`
}
