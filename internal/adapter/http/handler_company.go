package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auditx/auditx/internal/usecase"
	"github.com/auditx/auditx/pkg/apperror"
)

// CompanyHandler handles HTTP requests for companies and the
// superadmin activation panel.
type CompanyHandler struct {
	companyUseCase *usecase.CompanyUseCase
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyUseCase *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{companyUseCase: companyUseCase}
}

// RegisterRoutes registers company routes on the protected router.
func (h *CompanyHandler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/my-companies", h.MyCompanies).Methods("GET")
	protected.HandleFunc("/companies/{id}", h.Update).Methods("PUT")

	protected.HandleFunc("/admin/companies/pending", adminOnly(h.Pending)).Methods("GET")
	protected.HandleFunc("/admin/companies", adminOnly(h.All)).Methods("GET")
	protected.HandleFunc("/admin/companies/{id}/activate", adminOnly(h.Activate)).Methods("POST")
	protected.HandleFunc("/admin/companies/{id}/deactivate", adminOnly(h.Deactivate)).Methods("POST")
}

// MyCompanies lists the caller's own companies
func (h *CompanyHandler) MyCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyUseCase.MyCompanies(r.Context(), callerFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

// Update edits company metadata
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req usecase.CompanyUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	company, err := h.companyUseCase.Update(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

// Pending lists companies awaiting activation
func (h *CompanyHandler) Pending(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyUseCase.Pending(r.Context(), callerFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

// All lists every registered company
func (h *CompanyHandler) All(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyUseCase.All(r.Context(), callerFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

// Activate enables a company and its owner
func (h *CompanyHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.companyUseCase.Activate(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Cuenta activada exitosamente")
}

// Deactivate locks a company and its owner out
func (h *CompanyHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.companyUseCase.Deactivate(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Cuenta desactivada")
}
