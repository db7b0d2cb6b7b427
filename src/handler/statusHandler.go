package handler

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"polydash/src/model"
)

type statusProvider interface {
	Status(ctx context.Context) (*model.StatusResponse, error)
}

// StatusHandler returns a handler serving bot liveness, the 24h trade
// count and the tracked-trader config.
func StatusHandler(agg statusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := agg.Status(r.Context())
		if err != nil {
			logger.WithError(err).Error("failed to aggregate bot status")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
