package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhaugsand/fueleu/internal/domain/route"
)

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	opts := route.ListOptions{
		Search: r.URL.Query().Get("search"),
		Vessel: r.URL.Query().Get("vessel"),
		Year:   parseYearFilter(r),
		Limit:  limit,
		Offset: offset,
	}

	routes, err := s.services.Routes.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, routes)
}

func (s *Server) handleCreateRoute(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	req, verr := route.ParseCreate(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	rt, err := s.services.Routes.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, rt)
}

func (s *Server) handleGetRoute(w http.ResponseWriter, r *http.Request) {
	rt, err := s.services.Routes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rt)
}

func (s *Server) handleUpdateRoute(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	patch, verr := route.ParseUpdate(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	rt, err := s.services.Routes.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rt)
}

func (s *Server) handleDeleteRoute(w http.ResponseWriter, r *http.Request) {
	rt, err := s.services.Routes.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteBody{
		Message: "Route deleted successfully",
		Record:  rt,
	})
}

func (s *Server) handleCompareRoutes(w http.ResponseWriter, r *http.Request) {
	baselineID := r.URL.Query().Get("baseline")
	comparisonID := r.URL.Query().Get("comparison")
	if baselineID == "" || comparisonID == "" {
		writeErrorCode(w, http.StatusBadRequest,
			"baseline and comparison route ids are required", "INVALID_ID")
		return
	}

	cmp, err := s.services.Routes.Compare(r.Context(), baselineID, comparisonID)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, cmp)
}
