package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"polydash/src/aggregator"
	"polydash/src/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard is an unauthenticated read-only surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler upgrades to a websocket and pushes one composite snapshot
// per interval, for consumers that prefer push over polling the three
// endpoints. A failed aggregation skips the frame; the last delivered
// frame stays valid on the client.
func StreamHandler(
	status statusProvider,
	trades tradesProvider,
	positions positionsProvider,
	interval time.Duration,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Error("websocket upgrade failed")
			return
		}
		defer conn.Close()

		logger.WithField("remote", conn.RemoteAddr().String()).Info("snapshot stream opened")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			snapshot, err := buildSnapshot(r.Context(), status, trades, positions)
			if err != nil {
				logger.WithError(err).Warn("snapshot aggregation failed, skipping frame")
			} else if err := conn.WriteJSON(snapshot); err != nil {
				logger.WithError(err).Info("snapshot stream closed")
				return
			}

			select {
			case <-r.Context().Done():
				return
			case <-ticker.C:
			}
		}
	}
}

func buildSnapshot(
	ctx context.Context,
	status statusProvider,
	trades tradesProvider,
	positions positionsProvider,
) (*model.Snapshot, error) {

	var snapshot model.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := status.Status(gctx)
		if err != nil {
			return err
		}
		snapshot.Status = *resp
		return nil
	})
	g.Go(func() error {
		entries, err := trades.Trades(gctx, aggregator.DefaultTradeLimit)
		if err != nil {
			return err
		}
		snapshot.Trades = model.TradesResponse{OK: true, Trades: entries}
		return nil
	})
	g.Go(func() error {
		byTrader, err := positions.Positions(gctx)
		if err != nil {
			return err
		}
		snapshot.Positions = model.PositionsResponse{OK: true, PositionsByTrader: byTrader}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
