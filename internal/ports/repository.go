package ports

import (
	"context"
	"time"

	"github.com/auditx/auditx/internal/domain"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error

	FindByID(ctx context.Context, id string) (*domain.User, error)

	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetActive flips the activation flag that gates authentication.
	SetActive(ctx context.Context, id string, active bool) error

	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// Delete removes a user. Registration uses it to roll back the user
	// insert when the company insert fails, so the email is not left
	// permanently reserved by an orphaned account.
	Delete(ctx context.Context, id string) error
}

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error

	FindByID(ctx context.Context, id string) (*domain.Company, error)

	// ListByUser retrieves the companies owned by a user.
	ListByUser(ctx context.Context, userID string) ([]*domain.Company, error)

	// List retrieves companies, optionally only those pending activation.
	List(ctx context.Context, pendingOnly bool) ([]*domain.Company, error)

	Update(ctx context.Context, company *domain.Company) error

	SetActive(ctx context.Context, id string, active bool) error
}

// AuditFilter scopes audit listings.
type AuditFilter struct {
	UserID    string
	CompanyID string
}

// AuditRepository defines the interface for audit persistence
type AuditRepository interface {
	Create(ctx context.Context, audit *domain.Audit) error

	FindByID(ctx context.Context, id string) (*domain.Audit, error)

	List(ctx context.Context, filter AuditFilter) ([]*domain.Audit, error)

	// Update persists the audit conditionally on the version it was
	// read at (compare-and-swap) and bumps the version. A stale version
	// yields domain.ErrConcurrentUpdate.
	Update(ctx context.Context, audit *domain.Audit) error

	Delete(ctx context.Context, id string) error
}

// AnalysisRepository defines the interface for AI analysis persistence
type AnalysisRepository interface {
	// Upsert stores the analysis for an audit, replacing any previous one.
	Upsert(ctx context.Context, analysis *domain.AIAnalysis) error

	FindByID(ctx context.Context, id string) (*domain.AIAnalysis, error)

	FindByAuditID(ctx context.Context, auditID string) (*domain.AIAnalysis, error)

	Update(ctx context.Context, analysis *domain.AIAnalysis) error

	// DeleteByAuditID removes the analysis tied to an audit; deleting an
	// audit cascades here. Absent analyses are not an error.
	DeleteByAuditID(ctx context.Context, auditID string) error
}

// ResetToken is a single-use password reset grant.
type ResetToken struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ResetTokenStore holds short-lived password reset tokens.
type ResetTokenStore interface {
	Store(ctx context.Context, token ResetToken, ttl time.Duration) error

	// Find returns the token if present and unexpired.
	Find(ctx context.Context, token string) (*ResetToken, error)

	// Consume atomically invalidates a token so it cannot be reused.
	Consume(ctx context.Context, token string) error
}
