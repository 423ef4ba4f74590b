package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/service/logger"
)

type authFixture struct {
	uc     *AuthUseCase
	users  *mockUserRepo
	comps  *mockCompanyRepo
	tokens *mockResetTokenStore
	mailer *mockMailer
	limit  *mockLimiter
}

func newAuthFixture() *authFixture {
	users := newMockUserRepo()
	comps := newMockCompanyRepo()
	tokens := newMockResetTokenStore()
	mailer := &mockMailer{}
	limit := &mockLimiter{allowed: true}

	uc := NewAuthUseCase(
		users, comps, mockPasswordService{}, mockTokenService{},
		tokens, mailer, limit,
		AuthConfig{
			SuperadminEmail:   "admin@auditx.co",
			PasswordMinLength: 8,
			ResetBaseURL:      "http://localhost:3000",
		},
		logger.Nop(),
	)
	return &authFixture{uc: uc, users: users, comps: comps, tokens: tokens, mailer: mailer, limit: limit}
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:       "Cliente@Empresa.co",
		Password:    "secreto123",
		CompanyName: "Acme SAS",
		AdminName:   "Ana",
		Address:     "Calle 1",
		Phone:       "300",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates inactive user and company", func(t *testing.T) {
		f := newAuthFixture()

		user, err := f.uc.Register(ctx, validRegister())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "cliente@empresa.co" {
			t.Errorf("expected normalized email, got %q", user.Email)
		}
		if user.IsActive {
			t.Error("new client must start inactive")
		}
		if user.Role != domain.RoleClient {
			t.Errorf("expected client role, got %s", user.Role)
		}

		companies, _ := f.comps.ListByUser(ctx, user.ID)
		if len(companies) != 1 {
			t.Fatalf("expected 1 company, got %d", len(companies))
		}
		if companies[0].IsActive {
			t.Error("new company must start pending activation")
		}
	})

	t.Run("notifies superadmin", func(t *testing.T) {
		f := newAuthFixture()

		if _, err := f.uc.Register(ctx, validRegister()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.mailer.sent) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(f.mailer.sent))
		}
		if f.mailer.sent[0].To != "admin@auditx.co" {
			t.Errorf("notification went to %q", f.mailer.sent[0].To)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.uc.Register(ctx, validRegister()); err != nil {
			t.Fatalf("first register failed: %v", err)
		}

		_, err := f.uc.Register(ctx, validRegister())
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("company create failure rolls the user back", func(t *testing.T) {
		f := newAuthFixture()
		f.comps.createErr = errors.New("insert failed")

		if _, err := f.uc.Register(ctx, validRegister()); err == nil {
			t.Fatal("expected register to fail")
		}
		if len(f.users.users) != 0 {
			t.Errorf("expected user rolled back, %d remain", len(f.users.users))
		}

		// The email stays available for a retry.
		f.comps.createErr = nil
		if _, err := f.uc.Register(ctx, validRegister()); err != nil {
			t.Errorf("retry with the same email failed: %v", err)
		}
	})

	t.Run("short password rejected", func(t *testing.T) {
		f := newAuthFixture()
		req := validRegister()
		req.Password = "corto"

		if _, err := f.uc.Register(ctx, req); !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive client cannot log in", func(t *testing.T) {
		f := newAuthFixture()
		user, _ := f.uc.Register(ctx, validRegister())

		_, err := f.uc.Login(ctx, user.Email, "secreto123")
		if !errors.Is(err, domain.ErrAccountInactive) {
			t.Errorf("expected ErrAccountInactive, got %v", err)
		}
	})

	t.Run("activated client gets a token", func(t *testing.T) {
		f := newAuthFixture()
		user, _ := f.uc.Register(ctx, validRegister())
		_ = f.users.SetActive(ctx, user.ID, true)

		result, err := f.uc.Login(ctx, "CLIENTE@empresa.co", "secreto123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token == "" {
			t.Error("expected a token")
		}
		if result.User.ID != user.ID {
			t.Error("expected the logged-in user in the result")
		}
		if len(f.limit.resets) != 1 {
			t.Error("successful login must reset the attempt counter")
		}
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		f := newAuthFixture()
		user, _ := f.uc.Register(ctx, validRegister())
		_ = f.users.SetActive(ctx, user.ID, true)

		_, badPass := f.uc.Login(ctx, user.Email, "incorrecta1")
		_, badUser := f.uc.Login(ctx, "nadie@empresa.co", "secreto123")

		if badPass == nil || badUser == nil {
			t.Fatal("expected both logins to fail")
		}
		if badPass.Error() != badUser.Error() {
			t.Errorf("failure messages differ: %q vs %q", badPass, badUser)
		}
		if !domain.IsValidation(badPass) || !domain.IsValidation(badUser) {
			t.Error("credential failures must be validation errors")
		}
	})

	t.Run("throttled after too many attempts", func(t *testing.T) {
		f := newAuthFixture()
		f.limit.allowed = false

		_, err := f.uc.Login(ctx, "cliente@empresa.co", "secreto123")
		if !domain.IsForbidden(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	user, _ := f.uc.Register(ctx, validRegister())
	caller := domain.Caller{UserID: user.ID, Role: domain.RoleClient}

	t.Run("wrong current password rejected", func(t *testing.T) {
		err := f.uc.ChangePassword(ctx, caller, "incorrecta1", "nuevaclave1")
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("replaces the hash", func(t *testing.T) {
		if err := f.uc.ChangePassword(ctx, caller, "secreto123", "nuevaclave1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := f.users.FindByID(ctx, user.ID)
		if stored.PasswordHash != "hashed:nuevaclave1" {
			t.Errorf("hash not replaced: %q", stored.PasswordHash)
		}
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		f := newAuthFixture()

		if err := f.uc.ForgotPassword(ctx, "nadie@empresa.co"); err != nil {
			t.Errorf("expected silence for unknown email, got %v", err)
		}
		if len(f.mailer.sent) != 0 {
			t.Error("no mail may be sent for an unknown email")
		}
	})

	t.Run("full reset flow consumes the token", func(t *testing.T) {
		f := newAuthFixture()
		user, _ := f.uc.Register(ctx, validRegister())
		f.mailer.sent = nil

		if err := f.uc.ForgotPassword(ctx, user.Email); err != nil {
			t.Fatalf("forgot password failed: %v", err)
		}
		if len(f.mailer.sent) != 1 {
			t.Fatalf("expected reset mail, got %d", len(f.mailer.sent))
		}
		if len(f.tokens.tokens) != 1 {
			t.Fatalf("expected 1 stored token, got %d", len(f.tokens.tokens))
		}

		var token string
		for k := range f.tokens.tokens {
			token = k
		}
		if !strings.Contains(f.mailer.sent[0].Body, token) {
			t.Error("reset mail must carry the token link")
		}

		email, err := f.uc.VerifyResetToken(ctx, token)
		if err != nil {
			t.Fatalf("verify failed: %v", err)
		}
		if email != user.Email {
			t.Errorf("expected %q, got %q", user.Email, email)
		}

		if err := f.uc.ResetPassword(ctx, token, "nuevaclave1"); err != nil {
			t.Fatalf("reset failed: %v", err)
		}
		stored, _ := f.users.FindByID(ctx, user.ID)
		if stored.PasswordHash != "hashed:nuevaclave1" {
			t.Error("password was not replaced")
		}

		// Single use: the token is gone.
		if err := f.uc.ResetPassword(ctx, token, "otraclave99"); !domain.IsValidation(err) {
			t.Errorf("expected invalid token on reuse, got %v", err)
		}
	})

	t.Run("short replacement password rejected", func(t *testing.T) {
		f := newAuthFixture()

		if err := f.uc.ResetPassword(ctx, "whatever", "corta"); !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
