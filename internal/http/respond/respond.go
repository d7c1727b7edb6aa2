// Package respond holds the JSON and error writing helpers shared by
// the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with a status derived from its kind. Validation
// failures and duplicates keep their message verbatim so clients can
// show it to the user unchanged.
func Error(w http.ResponseWriter, err error) {
	var (
		validation apperror.Validation
		duplicate  apperror.Duplicate
	)

	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &duplicate):
		http.Error(w, duplicate.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
