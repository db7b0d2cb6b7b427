package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"polydash/src/externalmodel"
)

type fakePositionStore struct {
	rows map[string][]externalmodel.PositionRecord
	errs map[string]error
}

func (f *fakePositionStore) TopPositions(_ context.Context, trader string, _ int) ([]externalmodel.PositionRecord, error) {
	if err := f.errs[trader]; err != nil {
		return nil, err
	}
	return f.rows[trader], nil
}

func position(value, pnl float64) externalmodel.PositionRecord {
	return externalmodel.PositionRecord{CurrentValue: &value, PercentPnl: &pnl}
}

func TestPositionsWeightedPnl(t *testing.T) {
	store := &fakePositionStore{rows: map[string][]externalmodel.PositionRecord{
		"0xaaa": {position(100, 0.1), position(50, -0.2)},
	}}
	agg := NewPositionAggregator(store, []string{"0xaaa"})

	byTrader, err := agg.Positions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byTrader) != 1 {
		t.Fatalf("expected 1 trader summary, got %d", len(byTrader))
	}

	summary := byTrader[0]
	assert.Equal(t, "0xaaa", summary.Trader)
	assert.InDelta(t, 150.0, summary.TotalValue, 1e-9)
	// 100*0.1 + 50*-0.2 = 0, so 0/150 = 0
	assert.InDelta(t, 0.0, summary.OverallPnl, 1e-9)
}

func TestPositionsWeightedPnlNonZero(t *testing.T) {
	store := &fakePositionStore{rows: map[string][]externalmodel.PositionRecord{
		"0xaaa": {position(200, 0.25), position(100, 0.1)},
	}}
	agg := NewPositionAggregator(store, []string{"0xaaa"})

	byTrader, err := agg.Positions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (200*0.25 + 100*0.1) / 300 = 60/300 = 0.2
	assert.InDelta(t, 0.2, byTrader[0].OverallPnl, 1e-9)
	assert.InDelta(t, 300.0, byTrader[0].TotalValue, 1e-9)
}

func TestPositionsZeroTotalValue(t *testing.T) {
	store := &fakePositionStore{rows: map[string][]externalmodel.PositionRecord{
		"0xaaa": {position(0, 0.5), position(0, -0.5)},
	}}
	agg := NewPositionAggregator(store, []string{"0xaaa"})

	byTrader, err := agg.Positions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, 0.0, byTrader[0].TotalValue)
	assert.Equal(t, 0.0, byTrader[0].OverallPnl)
}

func TestPositionsCoercion(t *testing.T) {
	asset := "asset-1"
	store := &fakePositionStore{rows: map[string][]externalmodel.PositionRecord{
		"0xaaa": {{Asset: &asset}},
	}}
	agg := NewPositionAggregator(store, []string{"0xaaa"})

	byTrader, err := agg.Positions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := byTrader[0].Positions[0]
	assert.Equal(t, 0.0, entry.CurrentValue)
	assert.Equal(t, 0.0, entry.PercentPnl)
	assert.Nil(t, entry.Title)
	assert.Nil(t, entry.ConditionID)
	if entry.Asset == nil || *entry.Asset != asset {
		t.Fatalf("asset identifier lost in normalization: %+v", entry)
	}
}

func TestPositionsEmptyPartition(t *testing.T) {
	store := &fakePositionStore{}
	agg := NewPositionAggregator(store, []string{"0xaaa"})

	byTrader, err := agg.Positions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byTrader) != 1 {
		t.Fatalf("expected summary even for empty partition, got %d", len(byTrader))
	}
	assert.Equal(t, 0.0, byTrader[0].TotalValue)
	assert.NotNil(t, byTrader[0].Positions)
	assert.Len(t, byTrader[0].Positions, 0)
}

func TestPositionsPartialFailureIsolated(t *testing.T) {
	store := &fakePositionStore{
		rows: map[string][]externalmodel.PositionRecord{"0xaaa": {position(10, 0.1)}},
		errs: map[string]error{"0xbbb": errors.New("partition gone")},
	}
	agg := NewPositionAggregator(store, []string{"0xaaa", "0xbbb"})

	byTrader, err := agg.Positions(context.Background())
	if err != nil {
		t.Fatalf("single-trader failure should not fail the aggregate: %v", err)
	}
	if len(byTrader) != 1 || byTrader[0].Trader != "0xaaa" {
		t.Fatalf("expected only the surviving trader, got %+v", byTrader)
	}
}
