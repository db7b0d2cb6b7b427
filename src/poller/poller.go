package poller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"polydash/src/model"
)

// Snapshot is the last fully successful poll cycle.
type Snapshot struct {
	CycleID   uuid.UUID
	Status    *model.StatusResponse
	Trades    []model.TradeEntry
	Positions []model.TraderPositions
	FetchedAt time.Time
}

type source interface {
	FetchStatus(ctx context.Context) (*model.StatusResponse, error)
	FetchTrades(ctx context.Context, limit int) ([]model.TradeEntry, error)
	FetchPositions(ctx context.Context) ([]model.TraderPositions, error)
}

// Poller issues the three endpoint calls concurrently per cycle. State is
// replaced only when all three succeed; on any failure the last snapshot
// stays in place and the stale flag goes up. Cycles never overlap: a tick
// arriving while one is in flight is skipped.
type Poller struct {
	client     source
	tradeLimit int

	mu       sync.Mutex
	inFlight bool
	last     *Snapshot
	stale    bool
}

func NewPoller(client source, tradeLimit int) *Poller {
	return &Poller{client: client, tradeLimit: tradeLimit}
}

// Tick runs one poll cycle. Returns whether the cycle actually ran (a
// skipped tick is not a failure), and the cycle error if it ran and failed.
func (p *Poller) Tick(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		logger.Debug("poll cycle still in flight, skipping tick")
		return false, nil
	}
	p.inFlight = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	cycleID := uuid.New()

	var (
		status    *model.StatusResponse
		trades    []model.TradeEntry
		positions []model.TraderPositions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = p.client.FetchStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		trades, err = p.client.FetchTrades(gctx, p.tradeLimit)
		return err
	})
	g.Go(func() error {
		var err error
		positions, err = p.client.FetchPositions(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		p.mu.Lock()
		p.stale = true
		p.mu.Unlock()

		logger.WithField("cycle_id", cycleID).
			WithError(err).
			Warn("poll cycle failed, keeping last snapshot")
		return true, err
	}

	p.mu.Lock()
	p.last = &Snapshot{
		CycleID:   cycleID,
		Status:    status,
		Trades:    trades,
		Positions: positions,
		FetchedAt: time.Now(),
	}
	p.stale = false
	p.mu.Unlock()

	logger.WithFields(map[string]interface{}{
		"cycle_id": cycleID,
		"trades":   len(trades),
		"traders":  len(positions),
	}).Debug("poll cycle completed")

	return true, nil
}

// State returns the last successful snapshot (nil before the first one)
// and whether the most recent cycle failed.
func (p *Poller) State() (*Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.stale
}
