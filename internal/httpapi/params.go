package httpapi

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// parsePagination reads limit/offset query parameters, clamping the limit
// to maxLimit and ignoring values that fail to parse.
func parsePagination(r *http.Request) (limit, offset int) {
	limit = defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// parseYearFilter reads an optional year query parameter. Unparseable
// values are ignored rather than rejected, matching the list contract.
func parseYearFilter(r *http.Request) *int {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}
