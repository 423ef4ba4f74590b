package domain

import (
	"time"

	"github.com/google/uuid"
)

// AIAnalysis is the narrative artifact derived from a scored audit:
// the raw LLM analysis plus an editable executive report. Keyed by
// audit id; regenerating overwrites, editing touches only the report.
type AIAnalysis struct {
	ID        string    `json:"id"`
	AuditID   string    `json:"audit_id"`
	Analysis  string    `json:"analysis"`
	Report    string    `json:"report"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAIAnalysis creates an analysis artifact for an audit.
func NewAIAnalysis(auditID, analysis, report string) *AIAnalysis {
	now := time.Now().UTC()
	return &AIAnalysis{
		ID:        uuid.New().String(),
		AuditID:   auditID,
		Analysis:  analysis,
		Report:    report,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateReport replaces the editable report text.
func (a *AIAnalysis) UpdateReport(report string) {
	a.Report = report
	a.UpdatedAt = time.Now().UTC()
}
