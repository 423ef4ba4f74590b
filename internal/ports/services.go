package ports

import (
	"context"
	"io"
	"time"

	"github.com/auditx/auditx/internal/domain"
)

// PasswordService hashes and verifies credentials.
type PasswordService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) error
}

// TokenClaims is the identity carried inside an access token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   domain.Role
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(claims TokenClaims) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// StandardDetail is one scored response joined with its catalog entry,
// the per-item input to narrative generation.
type StandardDetail struct {
	Standard     domain.Standard
	Value        domain.ResponseValue
	Observations string
	Score        float64
}

// NarrativeRequest is the scored data structure handed to the
// narrative collaborator. The core supplies numbers and findings; the
// generator owns all prompt text.
type NarrativeRequest struct {
	Company          *domain.Company
	TotalScore       float64
	PhasePercentages map[string]float64
	// CriticalItems and PartialItems list "id - title" for standards
	// answered no_cumple and cumple_parcial respectively.
	CriticalItems []string
	PartialItems  []string
	Details       []StandardDetail
}

// NarrativeResult carries the two generated texts: the raw analysis
// and the editable executive report. Both are opaque markdown.
type NarrativeResult struct {
	Analysis string
	Report   string
}

// NarrativeGenerator is the opaque text-generation collaborator behind
// AI analysis. Implementations are expected to honor ctx deadlines;
// retry policy lives in the use case, not here.
type NarrativeGenerator interface {
	Generate(ctx context.Context, req NarrativeRequest) (*NarrativeResult, error)
}

// ReportPDFData is everything the renderer needs for one report.
type ReportPDFData struct {
	Company     *domain.Company
	Audit       *domain.Audit
	ReportText  string
	EvaluatedAt time.Time
}

// ReportRenderer turns a scored audit plus narrative into a PDF byte
// stream. The core has no dependency on layout details.
type ReportRenderer interface {
	Render(data ReportPDFData) ([]byte, error)
}

// FileStore persists uploaded artifacts (logos, evidence photos) and
// returns a fetchable URL.
type FileStore interface {
	Save(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

// Mailer sends operator notifications. The default implementation only
// logs; real SMTP is out of scope.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LoginLimiter throttles authentication attempts per key (an email or
// a remote address).
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted and records it.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, key string) error
}
