// Package normalize maps arbitrary per-provider DTOs into the canonical
// asset record. Mapping is fail-soft: a malformed or partially populated
// upstream record is normalized to the nearest valid shape or dropped,
// never surfaced as an error.
package normalize

import (
	"stablecoin-view/internal/domain"
	"stablecoin-view/internal/format"
)

// DefaultTag is the sentinel tag applied when a source record carries no
// usable tag list.
const DefaultTag = "stablecoin"

// Normalizer maps one aggregated provider DTO into a canonical AssetRecord.
type Normalizer struct {
	formatter format.Formatter
}

// NewNormalizer creates a Normalizer using the given formatting capability
// for slug derivation and value validity checks.
func NewNormalizer(f format.Formatter) *Normalizer {
	return &Normalizer{formatter: f}
}

// Normalize maps raw into a canonical record. It returns nil (record
// dropped, not an error) when raw is not an object or lacks a usable
// symbol. Each derived field is independently optional: a missing source
// yields nil in the output.
func (n *Normalizer) Normalize(raw any) *domain.AssetRecord {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	// Identity must be a real string; a numeric value here is provider
	// garbage, not a symbol.
	symbol := textField(m, "symbol")
	if symbol == "" {
		return nil
	}
	name := firstString(m, "name")
	if name == "" {
		name = symbol
	}

	marketData := objectField(m, "marketData")
	supplyData := objectField(m, "supplyData")
	metadata := objectField(m, "metadata")

	rec := &domain.AssetRecord{
		ID:                stringField(m, "id"),
		Name:              name,
		Symbol:            symbol,
		Price:             floatField(marketData, "price"),
		Volume24h:         firstFloat(marketData, "volume24h", "volume"),
		PercentChange24h:  firstFloat(marketData, "percentChange24h", "percentChange"),
		Rank:              intField(marketData, "rank"),
		CirculatingSupply: firstFloat(supplyData, "circulatingSupply", "circulating"),
		TotalSupply:       firstFloat(supplyData, "totalSupply", "total"),
	}

	rec.MarketCap = n.deriveMarketCap(marketData, rec)
	rec.Slug = n.deriveSlug(m, symbol)
	rec.NetworkBreakdown = normalizeBreakdown(sliceField(supplyData, "networkBreakdown"))
	rec.Tags = normalizeTags(m["tags"])

	rec.ImageURL = deriveImageURL(m, metadata)
	rec.Description = firstText(metadata, m, "description")
	rec.LogoURL = deriveLogoURL(m, metadata, rec.ImageURL)

	return rec
}

// deriveMarketCap prefers the provider value, else computes
// circulatingSupply * price when both are present.
func (n *Normalizer) deriveMarketCap(marketData map[string]any, rec *domain.AssetRecord) *float64 {
	if mc := floatField(marketData, "marketCap"); mc != nil {
		return mc
	}
	if rec.CirculatingSupply != nil && rec.Price != nil {
		computed := *rec.CirculatingSupply * *rec.Price
		return &computed
	}
	return nil
}

// deriveSlug prefers an explicit slug, else slugifies the symbol.
func (n *Normalizer) deriveSlug(m map[string]any, symbol string) string {
	if slug := stringField(m, "slug"); slug != "" {
		return slug
	}
	return n.formatter.Slugify(symbol)
}

// normalizeBreakdown maps raw per-network supply entries field by field.
// Provider naming varies: network falls back to platform, percentage is
// renamed to sharePercent. Entries that are not objects or carry no network
// name are skipped.
func normalizeBreakdown(entries []any) []domain.NetworkSupply {
	if len(entries) == 0 {
		return nil
	}

	out := make([]domain.NetworkSupply, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		network := firstString(entry, "network", "platform")
		if network == "" {
			continue
		}
		out = append(out, domain.NetworkSupply{
			Network:         network,
			Supply:          floatField(entry, "supply"),
			SharePercent:    firstFloat(entry, "sharePercent", "percentage"),
			ContractAddress: stringPtr(entry, "contractAddress"),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeTags keeps a provided list when it is a proper sequence of
// strings, else applies the default sentinel tag.
func normalizeTags(raw any) []string {
	entries, ok := raw.([]any)
	if !ok {
		return []string{DefaultTag}
	}

	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		if s, ok := e.(string); ok && s != "" {
			tags = append(tags, s)
		}
	}
	if len(tags) == 0 {
		return []string{DefaultTag}
	}
	return tags
}

// deriveImageURL pulls the image URL from the record itself, else its
// metadata, under either provider spelling.
func deriveImageURL(m, metadata map[string]any) *string {
	if s := firstString(m, "imageUrl", "image"); s != "" {
		return &s
	}
	if s := firstString(metadata, "imageUrl", "image"); s != "" {
		return &s
	}
	return nil
}

// firstText pulls a text field from metadata, else the record itself.
func firstText(metadata, m map[string]any, key string) *string {
	if s := stringField(metadata, key); s != "" {
		return &s
	}
	if s := stringField(m, key); s != "" {
		return &s
	}
	return nil
}

// deriveLogoURL takes the best-available logo: explicit metadata logo
// fields first, then the already-resolved image URL.
func deriveLogoURL(m, metadata map[string]any, imageURL *string) *string {
	if s := firstString(metadata, "logoUrl", "logo"); s != "" {
		return &s
	}
	if s := stringField(m, "logoUrl"); s != "" {
		return &s
	}
	return imageURL
}
