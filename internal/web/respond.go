package web

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/amherst-artisan-market/market-backend/internal/common"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// Error maps a coded error to its HTTP response. Validation errors carry the
// offending field name; anything uncoded becomes a 500 with the supplied
// generic message plus a details string for diagnostics.
func Error(w http.ResponseWriter, err error, fallback string) {
	switch common.CodeOf(err) {
	case common.CodeValidation:
		body := map[string]string{"error": err.Error()}
		if field := common.FieldOf(err); field != "" {
			body["field"] = field
		}
		JSON(w, http.StatusBadRequest, body)
	case common.CodeUnauthorized:
		JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case common.CodeNotFound:
		JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		logrus.WithError(err).Error(fallback)
		JSON(w, http.StatusInternalServerError, map[string]string{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}
