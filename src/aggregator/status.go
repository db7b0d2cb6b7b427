package aggregator

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"polydash/src/externalmodel"
	"polydash/src/model"
)

const (
	// heartbeatMaxAge is how old the heartbeat may be before the bot
	// counts as stopped.
	heartbeatMaxAge = 30 * time.Second

	// tradeCountWindow is the trailing window for the trade-count metric.
	tradeCountWindow = 24 * time.Hour
)

type statusStore interface {
	Heartbeat(ctx context.Context) (*externalmodel.BotHeartbeat, error)
	CountTradesSince(ctx context.Context, trader string, sinceMillis int64) (int64, error)
}

// StatusAggregator derives bot liveness from heartbeat age and sums the
// per-trader trade counts over the trailing window.
type StatusAggregator struct {
	store       statusStore
	traders     []string
	proxyWallet string
	now         func() time.Time
}

func NewStatusAggregator(store statusStore, traders []string, proxyWallet string) *StatusAggregator {
	return &StatusAggregator{
		store:       store,
		traders:     traders,
		proxyWallet: proxyWallet,
		now:         time.Now,
	}
}

// Status builds the /status payload. Unlike the trade and position
// aggregations there is no per-trader degradation here: if the store is
// unreachable the whole call fails and the caller reports staleness.
func (a *StatusAggregator) Status(ctx context.Context) (*model.StatusResponse, error) {
	nowMillis := a.now().UnixMilli()

	heartbeat, err := a.store.Heartbeat(ctx)
	if err != nil {
		return nil, err
	}

	since := nowMillis - tradeCountWindow.Milliseconds()
	counts := make([]int64, len(a.traders))

	g, gctx := errgroup.WithContext(ctx)
	for i, trader := range a.traders {
		g.Go(func() error {
			count, err := a.store.CountTradesSince(gctx, trader, since)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var tradeCount24h int64
	for _, count := range counts {
		tradeCount24h += count
	}

	bot := model.BotInfo{}
	if heartbeat != nil {
		age := nowMillis - heartbeat.LastSeenAt
		bot.IsRunning = age < heartbeatMaxAge.Milliseconds()
		lastSeen := heartbeat.LastSeenAt
		bot.LastSeenAt = &lastSeen
		bot.PreviewMode = heartbeat.PreviewMode
	}

	return &model.StatusResponse{
		OK:  true,
		Bot: bot,
		Tracking: model.TrackingInfo{
			TradersTracked: len(a.traders),
			TradeCount24h:  tradeCount24h,
		},
		Config: model.StatusConfig{
			ProxyWallet: a.proxyWallet,
		},
	}, nil
}
