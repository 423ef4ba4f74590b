package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

// In-memory fakes shared by the use case tests. They store aggregates
// in maps and return the domain sentinel errors the real repositories
// would.

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*domain.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type mockCompanyRepo struct {
	companies map[string]*domain.Company
	createErr error
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: map[string]*domain.Company{}}
}

func (m *mockCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *mockCompanyRepo) ListByUser(_ context.Context, userID string) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, c := range m.companies {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCompanyRepo) List(_ context.Context, pendingOnly bool) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, c := range m.companies {
		if pendingOnly && c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := m.companies[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) SetActive(_ context.Context, id string, active bool) error {
	c, ok := m.companies[id]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	c.IsActive = active
	return nil
}

type mockAuditRepo struct {
	audits    map[string]*domain.Audit
	updates   int
	updateErr error
}

func newMockAuditRepo() *mockAuditRepo {
	return &mockAuditRepo{audits: map[string]*domain.Audit{}}
}

func (m *mockAuditRepo) Create(_ context.Context, audit *domain.Audit) error {
	m.audits[audit.ID] = audit
	return nil
}

func (m *mockAuditRepo) FindByID(_ context.Context, id string) (*domain.Audit, error) {
	if a, ok := m.audits[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAuditNotFound
}

func (m *mockAuditRepo) List(_ context.Context, filter ports.AuditFilter) ([]*domain.Audit, error) {
	var out []*domain.Audit
	for _, a := range m.audits {
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.CompanyID != "" && a.CompanyID != filter.CompanyID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAuditRepo) Update(_ context.Context, audit *domain.Audit) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.audits[audit.ID]; !ok {
		return domain.ErrAuditNotFound
	}
	m.updates++
	audit.Version++
	m.audits[audit.ID] = audit
	return nil
}

func (m *mockAuditRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.audits[id]; !ok {
		return domain.ErrAuditNotFound
	}
	delete(m.audits, id)
	return nil
}

type mockAnalysisRepo struct {
	byAudit map[string]*domain.AIAnalysis
	deletes []string
}

func newMockAnalysisRepo() *mockAnalysisRepo {
	return &mockAnalysisRepo{byAudit: map[string]*domain.AIAnalysis{}}
}

func (m *mockAnalysisRepo) Upsert(_ context.Context, analysis *domain.AIAnalysis) error {
	m.byAudit[analysis.AuditID] = analysis
	return nil
}

func (m *mockAnalysisRepo) FindByID(_ context.Context, id string) (*domain.AIAnalysis, error) {
	for _, a := range m.byAudit {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrAnalysisNotFound
}

func (m *mockAnalysisRepo) FindByAuditID(_ context.Context, auditID string) (*domain.AIAnalysis, error) {
	if a, ok := m.byAudit[auditID]; ok {
		return a, nil
	}
	return nil, domain.ErrAnalysisNotFound
}

func (m *mockAnalysisRepo) Update(_ context.Context, analysis *domain.AIAnalysis) error {
	m.byAudit[analysis.AuditID] = analysis
	return nil
}

func (m *mockAnalysisRepo) DeleteByAuditID(_ context.Context, auditID string) error {
	m.deletes = append(m.deletes, auditID)
	delete(m.byAudit, auditID)
	return nil
}

type mockResetTokenStore struct {
	tokens map[string]ports.ResetToken
}

func newMockResetTokenStore() *mockResetTokenStore {
	return &mockResetTokenStore{tokens: map[string]ports.ResetToken{}}
}

func (m *mockResetTokenStore) Store(_ context.Context, token ports.ResetToken, _ time.Duration) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockResetTokenStore) Find(_ context.Context, token string) (*ports.ResetToken, error) {
	if t, ok := m.tokens[token]; ok {
		return &t, nil
	}
	return nil, domain.ErrInvalidResetToken
}

func (m *mockResetTokenStore) Consume(_ context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return domain.ErrInvalidResetToken
	}
	delete(m.tokens, token)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mockMailer struct {
	sent []sentMail
}

func (m *mockMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type mockLimiter struct {
	allowed bool
	resets  []string
}

func (m *mockLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return m.allowed, nil
}

func (m *mockLimiter) Reset(_ context.Context, key string) error {
	m.resets = append(m.resets, key)
	return nil
}

// mockPasswordService avoids bcrypt cost in tests: the "hash" is a
// reversible prefix.
type mockPasswordService struct{}

func (mockPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockPasswordService) ComparePassword(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type mockTokenService struct{}

func (mockTokenService) GenerateAccessToken(claims ports.TokenClaims) (string, error) {
	return "token-for-" + claims.UserID, nil
}

func (mockTokenService) ValidateAccessToken(token string) (*ports.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

// mockGenerator fails a scripted number of times before succeeding.
type mockGenerator struct {
	failures int
	calls    int
	result   ports.NarrativeResult
}

func (m *mockGenerator) Generate(ctx context.Context, _ ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.calls++
	if m.calls <= m.failures {
		return nil, errors.New("provider unavailable")
	}
	result := m.result
	return &result, nil
}

type mockRenderer struct {
	lastData ports.ReportPDFData
}

func (m *mockRenderer) Render(data ports.ReportPDFData) ([]byte, error) {
	m.lastData = data
	return []byte("%PDF-1.4 test"), nil
}
