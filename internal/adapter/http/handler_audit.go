package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/usecase"
	"github.com/auditx/auditx/pkg/apperror"
)

// AuditHandler handles HTTP requests for the audit lifecycle.
type AuditHandler struct {
	auditUseCase *usecase.AuditUseCase
	catalog      domain.Catalog
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditUseCase *usecase.AuditUseCase, catalog domain.Catalog) *AuditHandler {
	return &AuditHandler{auditUseCase: auditUseCase, catalog: catalog}
}

// RegisterRoutes registers catalog and audit routes on the protected
// router.
func (h *AuditHandler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/standards", h.Standards).Methods("GET")

	protected.HandleFunc("/audits", h.Create).Methods("POST")
	protected.HandleFunc("/audits", h.List).Methods("GET")
	protected.HandleFunc("/audits/{id}", h.Get).Methods("GET")
	protected.HandleFunc("/audits/{id}", h.Delete).Methods("DELETE")
	protected.HandleFunc("/audits/{id}/responses", h.SaveProgress).Methods("PUT")
	protected.HandleFunc("/audits/{id}/close", h.Close).Methods("POST")
	protected.HandleFunc("/audits/{id}/reopen", adminOnly(h.Reopen)).Methods("POST")
}

// Standards returns the full checklist catalog
func (h *AuditHandler) Standards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Standards())
}

// Create opens a new audit for a company
func (h *AuditHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyID string            `json:"company_id"`
		Responses []domain.Response `json:"responses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	audit, err := h.auditUseCase.Create(r.Context(), callerFrom(r.Context()), req.CompanyID, req.Responses)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, audit)
}

// List returns the audits visible to the caller
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	audits, err := h.auditUseCase.List(r.Context(), callerFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audits)
}

// Get returns one audit with its company
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.auditUseCase.Get(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// SaveProgress upserts a response batch and re-scores the audit
func (h *AuditHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Responses []domain.Response `json:"responses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	audit, err := h.auditUseCase.SaveProgress(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"], req.Responses)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Close freezes the audit
func (h *AuditHandler) Close(w http.ResponseWriter, r *http.Request) {
	audit, err := h.auditUseCase.Close(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Reopen reverts a closed audit to in-progress (admin only)
func (h *AuditHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	audit, err := h.auditUseCase.Reopen(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// Delete removes an open audit and its analysis
func (h *AuditHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.auditUseCase.Delete(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Auditoría eliminada")
}
