package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
)

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	opts := pooling.MemberListOptions{
		PoolID: r.URL.Query().Get("poolId"),
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	}

	members, err := s.services.Pooling.ListMembers(r.Context(), opts)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	req, verr := pooling.ParseMemberCreate(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	member, err := s.services.Pooling.AddMember(r.Context(), req)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (s *Server) handleGetMember(w http.ResponseWriter, r *http.Request) {
	member, err := s.services.Pooling.GetMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	patch, verr := pooling.ParseMemberUpdate(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	member, err := s.services.Pooling.UpdateMember(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	member, err := s.services.Pooling.DeleteMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteBody{
		Message: "Pool member deleted successfully",
		Record:  member,
	})
}
