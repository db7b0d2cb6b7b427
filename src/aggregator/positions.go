package aggregator

import (
	"context"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"polydash/src/externalmodel"
	"polydash/src/model"
)

// positionsPerTrader bounds the per-trader read; positions beyond the top
// 50 by value carry negligible weight in the P&L anyway.
const positionsPerTrader = 50

type positionStore interface {
	TopPositions(ctx context.Context, trader string, limit int) ([]externalmodel.PositionRecord, error)
}

// PositionAggregator fans a bounded per-trader position read across all
// tracked traders and computes value-weighted P&L per trader.
type PositionAggregator struct {
	store   positionStore
	traders []string
}

func NewPositionAggregator(store positionStore, traders []string) *PositionAggregator {
	return &PositionAggregator{store: store, traders: traders}
}

// Positions builds the per-trader summaries. Per-trader failures are
// isolated the same way as in the trade aggregation.
func (a *PositionAggregator) Positions(ctx context.Context) ([]model.TraderPositions, error) {
	results := make([][]externalmodel.PositionRecord, len(a.traders))
	failures := make([]error, len(a.traders))

	g, gctx := errgroup.WithContext(ctx)
	for i, trader := range a.traders {
		g.Go(func() error {
			rows, err := a.store.TopPositions(gctx, trader, positionsPerTrader)
			if err != nil {
				logger.WithFields(map[string]interface{}{
					"aggregator": "positions",
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

	byTrader := make([]model.TraderPositions, 0, len(a.traders))
	for i, trader := range a.traders {
		if failures[i] != nil {
			continue
		}
		byTrader = append(byTrader, summarize(trader, results[i]))
	}
	return byTrader, nil
}

// summarize applies the position default table (missing numerics -> 0,
// missing identifiers -> null) and computes the value-weighted average
// percent P&L. overallPnl is 0 when totalValue is 0; that is the explicit
// division-by-zero policy, not an accident.
func summarize(trader string, rows []externalmodel.PositionRecord) model.TraderPositions {
	totalValue := decimal.Zero
	weighted := decimal.Zero

	positions := make([]model.PositionEntry, 0, len(rows))
	for _, row := range rows {
		value := decimal.NewFromFloat(zeroIfNil(row.CurrentValue))
		pnl := decimal.NewFromFloat(zeroIfNil(row.PercentPnl))

		totalValue = totalValue.Add(value)
		weighted = weighted.Add(value.Mul(pnl))

		positions = append(positions, model.PositionEntry{
			Asset:        row.Asset,
			ConditionID:  row.ConditionID,
			Title:        row.Title,
			Outcome:      row.Outcome,
			CurrentValue: zeroIfNil(row.CurrentValue),
			PercentPnl:   zeroIfNil(row.PercentPnl),
		})
	}

	overall := decimal.Zero
	if totalValue.IsPositive() {
		overall = weighted.Div(totalValue)
	}

	total, _ := totalValue.Float64()
	overallPnl, _ := overall.Float64()

	return model.TraderPositions{
		Trader:     trader,
		TotalValue: total,
		OverallPnl: overallPnl,
		Positions:  positions,
	}
}

func zeroIfNil(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
