package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/logger"
)

const resetTokenTTL = time.Hour

// RegisterRequest carries the combined user + company signup payload.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	AdminName   string `json:"admin_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// LoginResult is the issued token plus the public user view.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthConfig is the slice of configuration the auth flow needs.
type AuthConfig struct {
	SuperadminEmail   string
	PasswordMinLength int
	ResetBaseURL      string
}

// AuthUseCase handles registration, login and password recovery.
type AuthUseCase struct {
	userRepo    ports.UserRepository
	companyRepo ports.CompanyRepository
	passwords   ports.PasswordService
	tokens      ports.TokenService
	resetTokens ports.ResetTokenStore
	mailer      ports.Mailer
	limiter     ports.LoginLimiter
	cfg         AuthConfig
	log         logger.Logger
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(
	userRepo ports.UserRepository,
	companyRepo ports.CompanyRepository,
	passwords ports.PasswordService,
	tokens ports.TokenService,
	resetTokens ports.ResetTokenStore,
	mailer ports.Mailer,
	limiter ports.LoginLimiter,
	cfg AuthConfig,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		passwords:   passwords,
		tokens:      tokens,
		resetTokens: resetTokens,
		mailer:      mailer,
		limiter:     limiter,
		cfg:         cfg,
		log:         log,
	}
}

// Register creates an inactive client user with their company and
// notifies the superadmin that an activation is pending.
func (uc *AuthUseCase) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := uc.validateRegister(req); err != nil {
		return nil, err
	}

	if existing, err := uc.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := uc.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, domain.NewDependencyError("failed to hash password", err)
	}

	user := domain.NewUser(req.Email, hash, domain.RoleClient)
	company := domain.NewCompany(user.ID, req.CompanyName, req.AdminName, req.Address, req.Phone, req.LogoURL)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		// Roll the user insert back; an orphaned account would reserve
		// the email forever.
		if delErr := uc.userRepo.Delete(ctx, user.ID); delErr != nil {
			uc.log.Warn(ctx, "failed to roll back user after company create failure", map[string]interface{}{
				"user_id": user.ID,
				"error":   delErr.Error(),
			})
		}
		return nil, err
	}

	body := fmt.Sprintf(
		"Se ha registrado un nuevo cliente:\n\nEmpresa: %s\nAdministrador: %s\nEmail: %s\nTeléfono: %s\nDirección: %s\n\nIngrese al panel de administrador para activar esta cuenta.",
		req.CompanyName, req.AdminName, req.Email, req.Phone, req.Address,
	)
	if err := uc.mailer.Send(ctx, uc.cfg.SuperadminEmail, "Nuevo Registro de Cliente - Pendiente Activación", body); err != nil {
		uc.log.Warn(ctx, "failed to notify superadmin of registration", map[string]interface{}{"error": err.Error()})
	}

	uc.log.Info(ctx, "client registered", map[string]interface{}{
		"user_id":    user.ID,
		"company_id": company.ID,
	})
	return user, nil
}

// Login verifies credentials and issues an access token. Client
// accounts that have not been activated yet cannot log in.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.NewError(domain.KindValidation, "email and password are required")
	}

	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, "login:"+email)
		if err != nil {
			uc.log.Warn(ctx, "login limiter unavailable", map[string]interface{}{"error": err.Error()})
		} else if !allowed {
			return nil, domain.NewError(domain.KindForbidden, "too many login attempts, try again later")
		}
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			// Same failure as a bad password: never reveal which half
			// of the credentials was wrong.
			return nil, domain.NewError(domain.KindValidation, "invalid email or password")
		}
		return nil, err
	}

	if err := uc.passwords.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, domain.NewError(domain.KindValidation, "invalid email or password")
	}

	if user.Role == domain.RoleClient && !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	token, err := uc.tokens.GenerateAccessToken(ports.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, domain.NewDependencyError("failed to issue token", err)
	}

	if uc.limiter != nil {
		_ = uc.limiter.Reset(ctx, "login:"+email)
	}

	uc.log.Info(ctx, "user logged in", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return &LoginResult{Token: token, User: user}, nil
}

// Me resolves the caller's own user record.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}

// ChangePassword verifies the current password before replacing it.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, caller domain.Caller, current, next string) error {
	if len(next) < uc.cfg.PasswordMinLength {
		return domain.NewError(domain.KindValidation,
			fmt.Sprintf("password must be at least %d characters", uc.cfg.PasswordMinLength))
	}

	user, err := uc.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if err := uc.passwords.ComparePassword(user.PasswordHash, current); err != nil {
		return domain.NewError(domain.KindValidation, "current password is incorrect")
	}

	hash, err := uc.passwords.HashPassword(next)
	if err != nil {
		return domain.NewDependencyError("failed to hash password", err)
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID, hash)
}

// ForgotPassword issues a single-use reset token. The response is the
// same whether or not the email exists, to avoid leaking accounts.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}

	token := ports.ResetToken{
		Token:  uuid.New().String(),
		UserID: user.ID,
		Email:  user.Email,
	}
	if err := uc.resetTokens.Store(ctx, token, resetTokenTTL); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", uc.cfg.ResetBaseURL, token.Token)
	body := fmt.Sprintf(
		"Ha solicitado restablecer su contraseña.\n\nHaga clic en el siguiente enlace para crear una nueva contraseña:\n%s\n\nEste enlace expirará en 1 hora.\n\nSi no solicitó este cambio, puede ignorar este correo.",
		link,
	)
	if err := uc.mailer.Send(ctx, user.Email, "Restablecer Contraseña - AuditX", body); err != nil {
		uc.log.Warn(ctx, "failed to send reset email", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

// VerifyResetToken checks a token and returns the masked account email.
func (uc *AuthUseCase) VerifyResetToken(ctx context.Context, token string) (string, error) {
	rt, err := uc.resetTokens.Find(ctx, token)
	if err != nil {
		return "", err
	}
	return rt.Email, nil
}

// ResetPassword consumes a valid token and replaces the password.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < uc.cfg.PasswordMinLength {
		return domain.NewError(domain.KindValidation,
			fmt.Sprintf("password must be at least %d characters", uc.cfg.PasswordMinLength))
	}

	rt, err := uc.resetTokens.Find(ctx, token)
	if err != nil {
		return err
	}

	hash, err := uc.passwords.HashPassword(newPassword)
	if err != nil {
		return domain.NewDependencyError("failed to hash password", err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, rt.UserID, hash); err != nil {
		return err
	}
	if err := uc.resetTokens.Consume(ctx, token); err != nil {
		uc.log.Warn(ctx, "failed to consume reset token", map[string]interface{}{"error": err.Error()})
	}

	uc.log.Info(ctx, "password reset", map[string]interface{}{"user_id": rt.UserID})
	return nil
}

func (uc *AuthUseCase) validateRegister(req RegisterRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return domain.NewError(domain.KindValidation, "a valid email is required")
	}
	if len(req.Password) < uc.cfg.PasswordMinLength {
		return domain.NewError(domain.KindValidation,
			fmt.Sprintf("password must be at least %d characters", uc.cfg.PasswordMinLength))
	}
	if req.CompanyName == "" {
		return domain.NewError(domain.KindValidation, "company_name is required")
	}
	if req.AdminName == "" {
		return domain.NewError(domain.KindValidation, "admin_name is required")
	}
	return nil
}
