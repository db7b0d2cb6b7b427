package aggregator

import (
	"context"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"polydash/src/externalmodel"
	"polydash/src/model"
)

const (
	DefaultTradeLimit = 50
	MaxTradeLimit     = 200

	// minPerTraderQuota keeps the per-trader fetch from starving when the
	// global limit is small relative to the trader count.
	minPerTraderQuota = 10
)

// ClampLimit normalizes a requested global limit: non-positive values fall
// back to the default, values above the cap are clamped, not rejected.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultTradeLimit
	}
	if limit > MaxTradeLimit {
		return MaxTradeLimit
	}
	return limit
}

// PerTraderQuota over-fetches per trader so that after the global merge
// there are enough candidates to fill the limit even when one trader
// dominates recency.
func PerTraderQuota(limit, traderCount int) int {
	if traderCount < 1 {
		traderCount = 1
	}
	quota := (limit + traderCount - 1) / traderCount
	if quota < minPerTraderQuota {
		quota = minPerTraderQuota
	}
	return quota
}

type tradeStore interface {
	LatestTrades(ctx context.Context, trader string, limit int) ([]externalmodel.ActivityRecord, error)
}

// TradeAggregator fans a bounded per-trader read across all tracked
// traders, merges by recency and normalizes the rows.
type TradeAggregator struct {
	store   tradeStore
	traders []string
}

func NewTradeAggregator(store tradeStore, traders []string) *TradeAggregator {
	return &TradeAggregator{store: store, traders: traders}
}

type taggedTrade struct {
	trader string
	row    externalmodel.ActivityRecord
}

// Trades builds the merged trade feed. Per-trader failures are isolated:
// a failed trader is logged and skipped, and the aggregation only fails
// when every trader failed.
func (a *TradeAggregator) Trades(ctx context.Context, limit int) ([]model.TradeEntry, error) {
	limit = ClampLimit(limit)
	quota := PerTraderQuota(limit, len(a.traders))

	results := make([][]externalmodel.ActivityRecord, len(a.traders))
	failures := make([]error, len(a.traders))

	g, gctx := errgroup.WithContext(ctx)
	for i, trader := range a.traders {
		g.Go(func() error {
			rows, err := a.store.LatestTrades(gctx, trader, quota)
			if err != nil {
				logger.WithFields(map[string]interface{}{
					"aggregator": "trades",
					"trader":     trader,
				}).WithError(err).Warn("trader fetch failed, skipping")

				failures[i] = err
				return nil
			}
			results[i] = rows
			return nil
		})
	}
	_ = g.Wait()

	if err := allFailed(failures, len(a.traders)); err != nil {
		return nil, err
	}

	merged := make([]taggedTrade, 0, quota*len(a.traders))
	for i, trader := range a.traders {
		for _, row := range results[i] {
			merged = append(merged, taggedTrade{trader: trader, row: row})
		}
	}

	// Stable sort keeps fetch order for equal timestamps.
	sort.SliceStable(merged, func(i, j int) bool {
		return timestampOf(merged[i].row) > timestampOf(merged[j].row)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}

	entries := make([]model.TradeEntry, 0, len(merged))
	for _, tagged := range merged {
		entries = append(entries, normalizeTrade(tagged.trader, tagged.row))
	}
	return entries, nil
}

func timestampOf(row externalmodel.ActivityRecord) int64 {
	if row.Timestamp == nil {
		return 0
	}
	return *row.Timestamp
}

// normalizeTrade applies the trade default table:
//
//	timestamp, amountUsd, price, market, txHash -> null when absent
//	side                                        -> BUY unless "sell" in any casing
//	isBot                                       -> false when absent
//
// The BUY fallback for an absent or unknown side is deliberate, matching
// the writer's convention that only sells are labeled reliably.
func normalizeTrade(trader string, row externalmodel.ActivityRecord) model.TradeEntry {
	action := model.ActionBuy
	if row.Side != nil && strings.EqualFold(*row.Side, "sell") {
		action = model.ActionSell
	}

	market := row.Slug
	if market == nil {
		market = row.EventSlug
	}

	return model.TradeEntry{
		ID:        row.ID,
		Timestamp: row.Timestamp,
		Trader:    trader,
		Action:    action,
		AmountUsd: row.UsdcSize,
		Price:     row.Price,
		Market:    market,
		TxHash:    row.TransactionHash,
		IsBot:     row.Bot != nil && *row.Bot,
	}
}

// allFailed returns the first captured error when every trader failed,
// nil otherwise.
func allFailed(failures []error, traderCount int) error {
	if traderCount == 0 {
		return nil
	}
	var first error
	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
			if first == nil {
				first = err
			}
		}
	}
	if failed == traderCount {
		return first
	}
	return nil
}
