package handler

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"polydash/src/model"
)

type positionsProvider interface {
	Positions(ctx context.Context) ([]model.TraderPositions, error)
}

// PositionsHandler returns a handler serving the per-trader position
// summaries with value-weighted P&L.
func PositionsHandler(agg positionsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byTrader, err := agg.Positions(r.Context())
		if err != nil {
			logger.WithError(err).Error("failed to aggregate positions")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, model.PositionsResponse{
			OK:                true,
			PositionsByTrader: byTrader,
		})
	}
}
