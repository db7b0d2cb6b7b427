package handler

import (
	"context"
	"net/http"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"polydash/src/aggregator"
	"polydash/src/model"
)

type tradesProvider interface {
	Trades(ctx context.Context, limit int) ([]model.TradeEntry, error)
}

// TradesHandler returns a handler serving the merged trade feed.
// Supports ?limit=N; unparsable or non-positive values fall back to the
// default, values above the cap are clamped by the aggregator.
func TradesHandler(agg tradesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := aggregator.DefaultTradeLimit
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			if parsed, err := strconv.Atoi(limitParam); err == nil {
				limit = parsed
			}
		}

		trades, err := agg.Trades(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("failed to aggregate trades")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, model.TradesResponse{
			OK:     true,
			Trades: trades,
		})
	}
}
