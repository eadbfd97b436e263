package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/domain/route"
	"github.com/mhaugsand/fueleu/internal/validate"
	"github.com/rs/zerolog"
)

// errorBody is the wire shape of every error response. Code is omitted when
// an endpoint has no stable code for the failure (route 404s, internal
// errors).
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// deleteBody wraps delete responses, echoing the removed record.
type deleteBody struct {
	Message        string `json:"message"`
	Record         any    `json:"record"`
	MembersRemoved *int   `json:"membersRemoved,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// decodeFields reads the request body into a loose field map, preserving
// numeric precision via json.Number so the validate layer can coerce.
func decodeFields(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// writeDomainError maps domain and validation failures onto the REST
// contract. Anything unrecognized is a 500 with a generic message; the
// detail goes to the log only.
func writeDomainError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		writeErrorCode(w, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}

	switch {
	case errors.Is(err, route.ErrRouteNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Route not found"})
	case errors.Is(err, route.ErrNoUpdateFields):
		writeErrorCode(w, http.StatusBadRequest, "No valid fields provided for update", "NO_UPDATE_FIELDS")
	case errors.Is(err, banking.ErrRecordNotFound):
		writeErrorCode(w, http.StatusNotFound, "Banking record not found", "RECORD_NOT_FOUND")
	case errors.Is(err, banking.ErrInvalidAmount):
		writeErrorCode(w, http.StatusBadRequest, "amount must be a positive number", "INVALID_AMOUNT")
	case errors.Is(err, banking.ErrInsufficientRemaining):
		writeErrorCode(w, http.StatusBadRequest, "Cannot bank more than remaining CB", "INSUFFICIENT_REMAINING")
	case errors.Is(err, banking.ErrInsufficientBanked):
		writeErrorCode(w, http.StatusBadRequest, "Cannot apply more than banked CB", "INSUFFICIENT_BANKED")
	case errors.Is(err, banking.ErrNoUpdates):
		writeErrorCode(w, http.StatusBadRequest, "No valid fields to update", "NO_UPDATES")
	case errors.Is(err, banking.ErrConflict):
		writeErrorCode(w, http.StatusConflict, "Banking record was modified concurrently, retry", "CONFLICT")
	case errors.Is(err, pooling.ErrPoolNotFound):
		writeErrorCode(w, http.StatusNotFound, "Pool not found", "POOL_NOT_FOUND")
	case errors.Is(err, pooling.ErrMemberNotFound):
		writeErrorCode(w, http.StatusNotFound, "Pool member not found", "NOT_FOUND")
	case errors.Is(err, pooling.ErrNoUpdates):
		writeErrorCode(w, http.StatusBadRequest, "No valid fields to update", "NO_UPDATES")
	default:
		logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
	}
}
