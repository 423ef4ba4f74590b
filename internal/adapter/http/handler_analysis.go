package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auditx/auditx/internal/usecase"
	"github.com/auditx/auditx/pkg/apperror"
)

// AnalysisHandler handles HTTP requests for AI analysis and PDF
// report generation.
type AnalysisHandler struct {
	analysisUseCase *usecase.AnalysisUseCase
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisUseCase *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{analysisUseCase: analysisUseCase}
}

// RegisterRoutes registers analysis routes on the protected router.
func (h *AnalysisHandler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/audits/{id}/analysis", h.Analyze).Methods("POST")
	protected.HandleFunc("/audits/{id}/analysis", h.GetByAudit).Methods("GET")
	protected.HandleFunc("/analysis/{id}", h.UpdateReport).Methods("PUT")
	protected.HandleFunc("/audits/{id}/report.pdf", h.GeneratePDF).Methods("GET")
}

// Analyze generates (or regenerates) the narrative analysis for an audit
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.analysisUseCase.Analyze(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// GetByAudit fetches the stored analysis for an audit
func (h *AnalysisHandler) GetByAudit(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.analysisUseCase.GetByAudit(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// UpdateReport replaces the editable report text
func (h *AnalysisHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Report string `json:"report"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	analysis, err := h.analysisUseCase.UpdateReport(r.Context(), callerFrom(r.Context()), mux.Vars(r)["id"], req.Report)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// GeneratePDF streams the rendered report as a PDF download
func (h *AnalysisHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	auditID := mux.Vars(r)["id"]

	pdf, err := h.analysisUseCase.GeneratePDF(r.Context(), callerFrom(r.Context()), auditID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="informe_sgsst_%s.pdf"`, auditID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
