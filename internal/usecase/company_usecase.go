package usecase

import (
	"context"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/logger"
)

// CompanyWithUser joins a company with its owner's email for the admin
// listings.
type CompanyWithUser struct {
	*domain.Company
	UserEmail string `json:"user_email"`
}

// CompanyUpdate carries the editable company fields.
type CompanyUpdate struct {
	CompanyName string        `json:"company_name"`
	AdminName   string        `json:"admin_name"`
	Address     string        `json:"address"`
	Phone       string        `json:"phone"`
	NIT         string        `json:"nit"`
	RiskClass   string        `json:"risk_class"`
	WorkerCount int           `json:"worker_count"`
	Sites       []domain.Site `json:"sites"`
	LogoURL     string        `json:"logo_url"`
}

// CompanyUseCase handles company ownership and superadmin activation.
type CompanyUseCase struct {
	companyRepo ports.CompanyRepository
	userRepo    ports.UserRepository
	mailer      ports.Mailer
	log         logger.Logger
}

// NewCompanyUseCase creates a new company use case.
func NewCompanyUseCase(
	companyRepo ports.CompanyRepository,
	userRepo ports.UserRepository,
	mailer ports.Mailer,
	log logger.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		log:         log,
	}
}

// MyCompanies lists the companies owned by the caller.
func (uc *CompanyUseCase) MyCompanies(ctx context.Context, caller domain.Caller) ([]*domain.Company, error) {
	return uc.companyRepo.ListByUser(ctx, caller.UserID)
}

// Update edits company metadata. Owner or admin only.
func (uc *CompanyUseCase) Update(ctx context.Context, caller domain.Caller, companyID string, update CompanyUpdate) (*domain.Company, error) {
	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(company.UserID) {
		return nil, domain.ErrForbidden
	}

	if update.CompanyName != "" {
		company.CompanyName = update.CompanyName
	}
	if update.AdminName != "" {
		company.AdminName = update.AdminName
	}
	if update.Address != "" {
		company.Address = update.Address
	}
	if update.Phone != "" {
		company.Phone = update.Phone
	}
	if update.NIT != "" {
		company.NIT = update.NIT
	}
	if update.RiskClass != "" {
		company.RiskClass = update.RiskClass
	}
	if update.WorkerCount > 0 {
		company.WorkerCount = update.WorkerCount
	}
	if update.Sites != nil {
		company.Sites = update.Sites
	}
	if update.LogoURL != "" {
		company.LogoURL = update.LogoURL
	}

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Pending lists companies awaiting activation. Admin only.
func (uc *CompanyUseCase) Pending(ctx context.Context, caller domain.Caller) ([]CompanyWithUser, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return uc.withUsers(ctx, true)
}

// All lists every company. Admin only.
func (uc *CompanyUseCase) All(ctx context.Context, caller domain.Caller) ([]CompanyWithUser, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return uc.withUsers(ctx, false)
}

// Activate enables a company and its owning user, then notifies them.
// Admin only.
func (uc *CompanyUseCase) Activate(ctx context.Context, caller domain.Caller, companyID string) error {
	return uc.setActive(ctx, caller, companyID, true)
}

// Deactivate locks a company and its owning user out. Admin only.
func (uc *CompanyUseCase) Deactivate(ctx context.Context, caller domain.Caller, companyID string) error {
	return uc.setActive(ctx, caller, companyID, false)
}

func (uc *CompanyUseCase) setActive(ctx context.Context, caller domain.Caller, companyID string, active bool) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}

	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	if err := uc.companyRepo.SetActive(ctx, companyID, active); err != nil {
		return err
	}
	if err := uc.userRepo.SetActive(ctx, company.UserID, active); err != nil {
		return err
	}

	if active {
		if user, err := uc.userRepo.FindByID(ctx, company.UserID); err == nil {
			body := "Su cuenta ha sido activada. Ya puede ingresar al sistema para crear auditorías de seguridad."
			if err := uc.mailer.Send(ctx, user.Email, "Cuenta Activada", body); err != nil {
				uc.log.Warn(ctx, "failed to send activation email", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	uc.log.Info(ctx, "company activation changed", map[string]interface{}{
		"company_id": companyID,
		"active":     active,
	})
	return nil
}

func (uc *CompanyUseCase) withUsers(ctx context.Context, pendingOnly bool) ([]CompanyWithUser, error) {
	companies, err := uc.companyRepo.List(ctx, pendingOnly)
	if err != nil {
		return nil, err
	}

	out := make([]CompanyWithUser, 0, len(companies))
	for _, c := range companies {
		email := ""
		if user, err := uc.userRepo.FindByID(ctx, c.UserID); err == nil {
			email = user.Email
		}
		out = append(out, CompanyWithUser{Company: c, UserEmail: email})
	}
	return out, nil
}
