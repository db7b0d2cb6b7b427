package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"polydash/src/model"
	"polydash/src/poller"
)

type scriptedSource struct {
	fail bool
}

func (s *scriptedSource) FetchStatus(_ context.Context) (*model.StatusResponse, error) {
	if s.fail {
		return nil, errors.New("store down")
	}
	lastSeen := time.Now().UnixMilli()
	return &model.StatusResponse{
		OK:       true,
		Bot:      model.BotInfo{IsRunning: true, LastSeenAt: &lastSeen},
		Tracking: model.TrackingInfo{TradersTracked: 1, TradeCount24h: 3},
		Config:   model.StatusConfig{ProxyWallet: "0x1234567890abcdef1234"},
	}, nil
}

func (s *scriptedSource) FetchTrades(_ context.Context, _ int) ([]model.TradeEntry, error) {
	if s.fail {
		return nil, errors.New("store down")
	}
	ts := time.Now().UnixMilli()
	market := "will-it-rain"
	return []model.TradeEntry{
		{ID: "t1", Timestamp: &ts, Trader: "0xaaa", Action: model.ActionSell, Market: &market},
	}, nil
}

func (s *scriptedSource) FetchPositions(_ context.Context) ([]model.TraderPositions, error) {
	if s.fail {
		return nil, errors.New("store down")
	}
	return []model.TraderPositions{{Trader: "0xaaa", TotalValue: 150, OverallPnl: 0.1}}, nil
}

func runCycle(t *testing.T, d *Dashboard, p *poller.Poller) {
	t.Helper()
	_, err := p.Tick(context.Background())
	updated, _ := d.Update(cycleDoneMsg{err: err})
	if updated != d {
		t.Fatal("Update should return the same dashboard model")
	}
}

func TestDashboardViewBeforeFirstSnapshot(t *testing.T) {
	p := poller.NewPoller(&scriptedSource{}, 50)
	d := NewDashboard(p, 5*time.Second)

	if !strings.Contains(d.View(), "Connecting") {
		t.Fatalf("expected connecting view, got %q", d.View())
	}
}

func TestDashboardRendersSnapshot(t *testing.T) {
	src := &scriptedSource{}
	p := poller.NewPoller(src, 50)
	d := NewDashboard(p, 5*time.Second)

	runCycle(t, d, p)

	view := d.View()
	for _, want := range []string{"Polybot Dashboard", "RUNNING", "will-it-rain", "0xaaa"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDashboardStaleKeepsLastSnapshot(t *testing.T) {
	src := &scriptedSource{}
	p := poller.NewPoller(src, 50)
	d := NewDashboard(p, 5*time.Second)

	runCycle(t, d, p)

	src.fail = true
	runCycle(t, d, p)

	view := d.View()
	if !strings.Contains(view, "last snapshot") {
		t.Fatalf("expected stale warning in view:\n%s", view)
	}
	if !strings.Contains(view, "will-it-rain") {
		t.Fatalf("last-known-good feed should still render:\n%s", view)
	}
}
