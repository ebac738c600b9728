package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/quiz"
	"github.com/kevin997/CSL-Certification-Rest-API-sub005/internal/submission"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the service error taxonomy onto status codes: not-found
// lookups are 404, per-field validation 422, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	var fieldErrs submission.FieldErrors
	switch {
	case errors.Is(err, quiz.ErrNotFound), errors.Is(err, submission.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &fieldErrs):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": fieldErrs})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
