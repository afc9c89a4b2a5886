package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stablecoin-view/internal/format"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	formatter, err := format.FromConfig(format.Config{Type: format.TypeStandard})
	require.NoError(t, err)
	return NewNormalizer(formatter)
}

func TestNormalize_DropsNonObjects(t *testing.T) {
	n := newTestNormalizer(t)

	assert.Nil(t, n.Normalize(nil))
	assert.Nil(t, n.Normalize("not an object"))
	assert.Nil(t, n.Normalize(42.0))
	assert.Nil(t, n.Normalize([]any{"a"}))
}

func TestNormalize_DropsMissingSymbol(t *testing.T) {
	n := newTestNormalizer(t)

	assert.Nil(t, n.Normalize(map[string]any{}))
	assert.Nil(t, n.Normalize(map[string]any{"name": "Tether"}))
	assert.Nil(t, n.Normalize(map[string]any{"symbol": "   "}))

	// Numeric symbols are not coerced into identity.
	assert.Nil(t, n.Normalize(map[string]any{"symbol": 12.5}))
	assert.Nil(t, n.Normalize(map[string]any{"symbol": json.Number("42")}))
}

func TestNormalize_FullRecord(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{
		"id":     "tether",
		"symbol": "USDT",
		"name":   "Tether USD",
		"marketData": map[string]any{
			"price":            1.0005,
			"marketCap":        8.0e10,
			"volume24h":        4.2e10,
			"percentChange24h": -0.02,
			"rank":             3.0,
		},
		"supplyData": map[string]any{
			"circulatingSupply": 7.9e10,
			"totalSupply":       8.1e10,
			"networkBreakdown": []any{
				map[string]any{"network": "Ethereum", "supply": 5.0e10, "contractAddress": "0xdac1"},
				map[string]any{"platform": "Tron", "percentage": 37.5},
			},
		},
		"metadata": map[string]any{
			"description": "A fiat-backed stablecoin.",
			"logoUrl":     "https://img.example/usdt.png",
		},
		"tags": []any{"stablecoin", "asset-backed"},
	})

	require.NotNil(t, rec)
	assert.Equal(t, "tether", rec.ID)
	assert.Equal(t, "USDT", rec.Symbol)
	assert.Equal(t, "Tether USD", rec.Name)
	assert.Equal(t, "usdt", rec.Slug)

	require.NotNil(t, rec.Price)
	assert.Equal(t, 1.0005, *rec.Price)
	require.NotNil(t, rec.MarketCap)
	assert.Equal(t, 8.0e10, *rec.MarketCap)
	require.NotNil(t, rec.Rank)
	assert.Equal(t, 3, *rec.Rank)

	require.Len(t, rec.NetworkBreakdown, 2)
	eth := rec.NetworkBreakdown[0]
	assert.Equal(t, "Ethereum", eth.Network)
	require.NotNil(t, eth.Supply)
	assert.Equal(t, 5.0e10, *eth.Supply)
	require.NotNil(t, eth.ContractAddress)
	assert.Equal(t, "0xdac1", *eth.ContractAddress)

	tron := rec.NetworkBreakdown[1]
	assert.Equal(t, "Tron", tron.Network)
	assert.Nil(t, tron.Supply)
	require.NotNil(t, tron.SharePercent)
	assert.Equal(t, 37.5, *tron.SharePercent)

	assert.Equal(t, []string{"stablecoin", "asset-backed"}, rec.Tags)
	require.NotNil(t, rec.Description)
	assert.Equal(t, "A fiat-backed stablecoin.", *rec.Description)
	require.NotNil(t, rec.LogoURL)
	assert.Equal(t, "https://img.example/usdt.png", *rec.LogoURL)
}

func TestNormalize_MarketCapComputedFromSupplyAndPrice(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{
		"symbol":     "DAI",
		"marketData": map[string]any{"price": 2.0},
		"supplyData": map[string]any{"circulatingSupply": 100.0},
	})

	require.NotNil(t, rec)
	require.NotNil(t, rec.MarketCap)
	assert.Equal(t, 200.0, *rec.MarketCap)
}

func TestNormalize_MarketCapNilWithoutInputs(t *testing.T) {
	n := newTestNormalizer(t)

	// Price alone is not enough to compute a market cap.
	rec := n.Normalize(map[string]any{
		"symbol":     "DAI",
		"marketData": map[string]any{"price": 2.0},
	})

	require.NotNil(t, rec)
	assert.Nil(t, rec.MarketCap)
	assert.Nil(t, rec.CirculatingSupply)
}

func TestNormalize_NameFallsBackToSymbol(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{"symbol": "USDC"})
	require.NotNil(t, rec)
	assert.Equal(t, "USDC", rec.Name)
	assert.Equal(t, "usdc", rec.Slug)
}

func TestNormalize_ExplicitSlugWins(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{"symbol": "USDC", "slug": "usd-coin"})
	require.NotNil(t, rec)
	assert.Equal(t, "usd-coin", rec.Slug)
}

func TestNormalize_TagsDefaultWhenNotASequence(t *testing.T) {
	n := newTestNormalizer(t)

	for _, tags := range []any{nil, "stablecoin", 7.0, map[string]any{"a": "b"}, []any{1.0, 2.0}} {
		rec := n.Normalize(map[string]any{"symbol": "FRAX", "tags": tags})
		require.NotNil(t, rec)
		assert.Equal(t, []string{DefaultTag}, rec.Tags)
	}
}

func TestNormalize_BreakdownSkipsUnusableEntries(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{
		"symbol": "USDT",
		"supplyData": map[string]any{
			"networkBreakdown": []any{
				"not an object",
				map[string]any{"supply": 10.0}, // no network name
				map[string]any{"network": "Ethereum", "supply": 10.0},
			},
		},
	})

	require.NotNil(t, rec)
	require.Len(t, rec.NetworkBreakdown, 1)
	assert.Equal(t, "Ethereum", rec.NetworkBreakdown[0].Network)
}

func TestNormalize_StringNumericsCoerced(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{
		"symbol":     "USDT",
		"marketData": map[string]any{"price": "1.001"},
		"supplyData": map[string]any{"circulatingSupply": "5000"},
	})

	require.NotNil(t, rec)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 1.001, *rec.Price)
	require.NotNil(t, rec.CirculatingSupply)
	assert.Equal(t, 5000.0, *rec.CirculatingSupply)
}

func TestNormalize_ImageURLFromMetadata(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{
		"symbol":   "DAI",
		"metadata": map[string]any{"image": "https://img.example/dai.png"},
	})

	require.NotNil(t, rec)
	require.NotNil(t, rec.ImageURL)
	assert.Equal(t, "https://img.example/dai.png", *rec.ImageURL)
}

func TestNormalize_LogoFallsBackToImage(t *testing.T) {
	n := newTestNormalizer(t)

	rec := n.Normalize(map[string]any{
		"symbol":   "USDC",
		"imageUrl": "https://img.example/usdc.png",
	})

	require.NotNil(t, rec)
	require.NotNil(t, rec.ImageURL)
	require.NotNil(t, rec.LogoURL)
	assert.Equal(t, *rec.ImageURL, *rec.LogoURL)
}
