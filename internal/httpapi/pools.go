package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
)

func (s *Server) handleListPools(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	opts := pooling.PoolListOptions{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	}

	pools, err := s.services.Pooling.ListPools(r.Context(), opts)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, pools)
}

func (s *Server) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	name, verr := pooling.ParsePoolName(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	pool, err := s.services.Pooling.CreatePool(r.Context(), name)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, pool)
}

func (s *Server) handleGetPool(w http.ResponseWriter, r *http.Request) {
	pool, err := s.services.Pooling.GetPool(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, pool)
}

func (s *Server) handleUpdatePool(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	name, verr := pooling.ParsePoolName(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	pool, err := s.services.Pooling.RenamePool(r.Context(), chi.URLParam(r, "id"), name)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, pool)
}

func (s *Server) handleDeletePool(w http.ResponseWriter, r *http.Request) {
	pool, removed, err := s.services.Pooling.DeletePool(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteBody{
		Message:        "Pool deleted successfully",
		Record:         pool,
		MembersRemoved: &removed,
	})
}

func (s *Server) handlePoolSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.services.Pooling.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
