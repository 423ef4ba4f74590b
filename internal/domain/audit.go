package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditStatus represents the lifecycle state of an audit
type AuditStatus string

const (
	AuditStatusInProgress AuditStatus = "in_proceso"
	AuditStatusClosed     AuditStatus = "cerrada"
)

// Audit is the aggregate record of all responses for one company at
// one point in time, with its computed score and lifecycle status.
type Audit struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	UserID        string             `json:"user_id"`
	Responses     []ScoredResponse   `json:"responses"`
	TotalScore    float64            `json:"total_score"`
	PhaseScores   map[string]float64 `json:"phase_scores,omitempty"`
	AnsweredCount int                `json:"answered_count"`
	CatalogCount  int                `json:"catalog_count"`
	Status        AuditStatus        `json:"status"`
	// Version guards concurrent save-progress calls: repository updates
	// are conditional on it (compare-and-swap).
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAudit creates an open audit owned by the creating user and company.
func NewAudit(companyID, userID string) *Audit {
	now := time.Now().UTC()
	return &Audit{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		UserID:      userID,
		Responses:   []ScoredResponse{},
		PhaseScores: map[string]float64{},
		Status:      AuditStatusInProgress,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Closed reports whether the audit has been finalized.
func (a *Audit) Closed() bool {
	return a.Status == AuditStatusClosed
}

// RawResponses strips the stored scores back to plain responses, the
// input shape for merging and re-scoring.
func (a *Audit) RawResponses() []Response {
	raw := make([]Response, len(a.Responses))
	for i, r := range a.Responses {
		raw[i] = r.Response
	}
	return raw
}

// ApplyScore replaces the response set and recomputed metrics after a
// save-progress. It never changes the status. A closed audit rejects
// any further response mutation.
func (a *Audit) ApplyScore(responses []ScoredResponse, totalScore float64, phaseScores map[string]float64, answered, catalogCount int) error {
	if a.Closed() {
		return ErrAuditClosed
	}
	a.Responses = responses
	a.TotalScore = totalScore
	a.PhaseScores = phaseScores
	a.AnsweredCount = answered
	a.CatalogCount = catalogCount
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Close freezes the audit. Closing an already closed audit is a no-op,
// not an error: the terminal state is the same either way.
func (a *Audit) Close() error {
	if a.Closed() {
		return nil
	}
	a.Status = AuditStatusClosed
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// EnsureDeletable rejects deletion of closed audits. A closed audit is
// the frozen record of the assessment; removing it requires an
// administrative re-open first.
func (a *Audit) EnsureDeletable() error {
	if a.Closed() {
		return ErrDeleteClosed
	}
	return nil
}

// Reopen reverts a closed audit to in-progress. Administrative
// escape hatch for the delete-after-close restriction.
func (a *Audit) Reopen() {
	a.Status = AuditStatusInProgress
	a.UpdatedAt = time.Now().UTC()
}
