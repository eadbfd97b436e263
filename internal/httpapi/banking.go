package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/validate"
)

func (s *Server) handleListBankingRecords(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	opts := banking.ListOptions{
		Search: r.URL.Query().Get("search"),
		Vessel: r.URL.Query().Get("vessel"),
		Year:   parseYearFilter(r),
		Limit:  limit,
		Offset: offset,
	}

	records, err := s.services.Banking.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleCreateBankingRecord(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	req, verr := banking.ParseCreate(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	rec, err := s.services.Banking.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetBankingRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.services.Banking.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateBankingRecord(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return
	}

	patch, verr := banking.ParseUpdate(fields)
	if verr != nil {
		writeDomainError(w, s.logger, verr)
		return
	}

	rec, err := s.services.Banking.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteBankingRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.services.Banking.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteBody{
		Message: "Banking record deleted successfully",
		Record:  rec,
	})
}

func (s *Server) handleBank(w http.ResponseWriter, r *http.Request) {
	amount, ok := s.decodeAmount(w, r)
	if !ok {
		return
	}

	rec, err := s.services.Banking.Bank(r.Context(), chi.URLParam(r, "id"), amount)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	amount, ok := s.decodeAmount(w, r)
	if !ok {
		return
	}

	rec, err := s.services.Banking.Apply(r.Context(), chi.URLParam(r, "id"), amount)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// decodeAmount reads the {"amount": n} payload shared by bank and apply.
func (s *Server) decodeAmount(w http.ResponseWriter, r *http.Request) (float64, bool) {
	fields, err := decodeFields(r)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Invalid JSON body", "INVALID_BODY")
		return 0, false
	}

	raw, supplied := fields["amount"]
	if !supplied || raw == nil {
		writeErrorCode(w, http.StatusBadRequest, "amount is required", "INVALID_AMOUNT")
		return 0, false
	}
	amount, ok := validate.Float(raw)
	if !ok {
		writeErrorCode(w, http.StatusBadRequest, "amount must be a valid number", "INVALID_AMOUNT")
		return 0, false
	}
	return amount, true
}
