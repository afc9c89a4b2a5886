package source

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stablecoin-view/internal/observability"
)

// Cache keys for provider feeds.
const (
	cacheKeyMarket   = "market"
	cacheKeySupply   = "supply"
	cacheKeyMetadata = "metadata"
)

// DefaultCacheTTL is used when no TTL is configured.
const DefaultCacheTTL = 5 * time.Minute

// Collector fetches the three provider feeds concurrently and assembles the
// aggregated per-asset DTOs the transformer ingests. Feed responses are
// cached so a refresh cycle shorter than the provider's update cadence does
// not hammer upstream.
type Collector struct {
	provider Provider
	cache    *cache.Cache
	logger   *zap.Logger
}

// NewCollector creates a Collector over the given provider.
func NewCollector(p Provider, ttl time.Duration, logger *zap.Logger) *Collector {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Collector{
		provider: p,
		cache:    cache.New(ttl, 2*ttl),
		logger:   logger.Named("collector"),
	}
}

// CollectBatch fetches market, supply and metadata feeds and merges them
// into one aggregated DTO per quoted asset, in market feed order. The
// market feed is required; supply and metadata are best-effort and their
// absence only leaves the corresponding sub-objects out.
func (c *Collector) CollectBatch(ctx context.Context) ([]any, error) {
	var (
		quotes   []MarketQuote
		supplies []SupplyReport
		metadata []AssetMetadata
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotes, err = fetchCached(gctx, c.cache, cacheKeyMarket, c.provider.MarketQuotes)
		return err
	})
	g.Go(func() error {
		var err error
		supplies, err = fetchCached(gctx, c.cache, cacheKeySupply, c.provider.SupplyReports)
		if err != nil {
			c.logger.Warn("supply feed unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		metadata, err = fetchCached(gctx, c.cache, cacheKeyMetadata, c.provider.Metadata)
		if err != nil {
			c.logger.Warn("metadata feed unavailable", zap.Error(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	supplyBySymbol := make(map[string]SupplyReport, len(supplies))
	for _, s := range supplies {
		supplyBySymbol[symbolKey(s.Symbol)] = s
	}
	metaBySymbol := make(map[string]AssetMetadata, len(metadata))
	for _, m := range metadata {
		metaBySymbol[symbolKey(m.Symbol)] = m
	}

	batch := make([]any, 0, len(quotes))
	for _, q := range quotes {
		batch = append(batch, assembleDTO(q, supplyBySymbol, metaBySymbol))
	}

	c.logger.Debug("batch collected",
		zap.Int("quotes", len(quotes)),
		zap.Int("supplies", len(supplies)),
		zap.Int("metadata", len(metadata)))
	return batch, nil
}

// fetchCached returns the cached feed value or fetches and caches it.
func fetchCached[T any](ctx context.Context, c *cache.Cache, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if cached, ok := c.Get(key); ok {
		observability.DefaultMetrics.CacheHits.Inc()
		return cached.([]T), nil
	}
	observability.DefaultMetrics.CacheMisses.Inc()

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(key, value, cache.DefaultExpiration)
	return value, nil
}

// assembleDTO builds the aggregated map-shaped DTO for one asset. Only the
// sub-objects with data present are included; the normalizer treats each as
// independently optional.
func assembleDTO(q MarketQuote, supplies map[string]SupplyReport, metas map[string]AssetMetadata) map[string]any {
	dto := map[string]any{
		"symbol": q.Symbol,
	}
	if q.Name != "" {
		dto["name"] = q.Name
	}
	if q.ImageURL != "" {
		dto["imageUrl"] = q.ImageURL
	}

	marketData := map[string]any{}
	putFloat(marketData, "price", q.Price)
	putFloat(marketData, "marketCap", q.MarketCap)
	putFloat(marketData, "volume24h", q.Volume24h)
	putFloat(marketData, "percentChange24h", q.PercentChange24h)
	if q.Rank != nil {
		marketData["rank"] = float64(*q.Rank)
	}
	if len(marketData) > 0 {
		dto["marketData"] = marketData
	}

	if s, ok := supplies[symbolKey(q.Symbol)]; ok {
		supplyData := map[string]any{}
		putFloat(supplyData, "circulatingSupply", s.CirculatingSupply)
		putFloat(supplyData, "totalSupply", s.TotalSupply)
		if len(s.NetworkBreakdown) > 0 {
			breakdown := make([]any, 0, len(s.NetworkBreakdown))
			for _, entry := range s.NetworkBreakdown {
				e := map[string]any{"network": entry.Network}
				putFloat(e, "supply", entry.Supply)
				putFloat(e, "sharePercent", entry.SharePercent)
				if entry.ContractAddress != "" {
					e["contractAddress"] = entry.ContractAddress
				}
				breakdown = append(breakdown, e)
			}
			supplyData["networkBreakdown"] = breakdown
		}
		if len(supplyData) > 0 {
			dto["supplyData"] = supplyData
		}
	}

	if m, ok := metas[symbolKey(q.Symbol)]; ok {
		meta := map[string]any{}
		if m.Description != "" {
			meta["description"] = m.Description
		}
		if m.LogoURL != "" {
			meta["logoUrl"] = m.LogoURL
		}
		if len(meta) > 0 {
			dto["metadata"] = meta
		}
		if m.Slug != "" {
			dto["slug"] = m.Slug
		}
		if len(m.Tags) > 0 {
			tags := make([]any, len(m.Tags))
			for i, tag := range m.Tags {
				tags[i] = tag
			}
			dto["tags"] = tags
		}
	}

	return dto
}

// putFloat sets m[key] when v is present.
func putFloat(m map[string]any, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

// symbolKey normalizes a symbol for cross-feed joining.
func symbolKey(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
