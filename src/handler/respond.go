package handler

import (
	"encoding/json"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"polydash/src/model"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

// writeError translates any aggregation failure into the uniform
// {ok:false, error} envelope instead of raising to the transport layer.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		OK:    false,
		Error: err.Error(),
	})
}
