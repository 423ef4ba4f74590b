package usecase

import (
	"context"
	"testing"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/service/logger"
)

type companyFixture struct {
	uc      *CompanyUseCase
	users   *mockUserRepo
	comps   *mockCompanyRepo
	mailer  *mockMailer
	owner   domain.Caller
	admin   domain.Caller
	company *domain.Company
	user    *domain.User
}

func newCompanyFixture() *companyFixture {
	users := newMockUserRepo()
	comps := newMockCompanyRepo()
	mailer := &mockMailer{}

	user := domain.NewUser("cliente@empresa.co", "hash", domain.RoleClient)
	users.users[user.ID] = user
	company := domain.NewCompany(user.ID, "Acme SAS", "Ana", "Calle 1", "300", "")
	comps.companies[company.ID] = company

	return &companyFixture{
		uc:      NewCompanyUseCase(comps, users, mailer, logger.Nop()),
		users:   users,
		comps:   comps,
		mailer:  mailer,
		owner:   domain.Caller{UserID: user.ID, Role: domain.RoleClient},
		admin:   domain.Caller{UserID: "admin-1", Role: domain.RoleSuperadmin},
		company: company,
		user:    user,
	}
}

func TestCompanyUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only supplied fields", func(t *testing.T) {
		f := newCompanyFixture()

		updated, err := f.uc.Update(ctx, f.owner, f.company.ID, CompanyUpdate{
			NIT:         "900123456-7",
			RiskClass:   "III",
			WorkerCount: 25,
			Sites:       []domain.Site{{Name: "Sede Norte", Address: "Calle 100"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.NIT != "900123456-7" || updated.RiskClass != "III" || updated.WorkerCount != 25 {
			t.Errorf("fields not applied: %+v", updated)
		}
		if len(updated.Sites) != 1 {
			t.Errorf("sites not replaced: %+v", updated.Sites)
		}
		// Untouched fields keep their values.
		if updated.CompanyName != "Acme SAS" || updated.Phone != "300" {
			t.Errorf("unrelated fields changed: %+v", updated)
		}
	})

	t.Run("foreign caller is forbidden", func(t *testing.T) {
		f := newCompanyFixture()
		stranger := domain.Caller{UserID: "other-1", Role: domain.RoleClient}

		_, err := f.uc.Update(ctx, stranger, f.company.ID, CompanyUpdate{CompanyName: "X"})
		if !domain.IsForbidden(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}

func TestCompanyAdminListings(t *testing.T) {
	ctx := context.Background()
	f := newCompanyFixture()

	activeUser := domain.NewUser("activo@empresa.co", "hash", domain.RoleClient)
	activeUser.IsActive = true
	f.users.users[activeUser.ID] = activeUser
	activeCompany := domain.NewCompany(activeUser.ID, "Beta SAS", "Luis", "Calle 2", "301", "")
	activeCompany.IsActive = true
	f.comps.companies[activeCompany.ID] = activeCompany

	t.Run("pending filters out active companies", func(t *testing.T) {
		pending, err := f.uc.Pending(ctx, f.admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pending) != 1 {
			t.Fatalf("expected 1 pending company, got %d", len(pending))
		}
		if pending[0].ID != f.company.ID {
			t.Errorf("unexpected pending company %s", pending[0].ID)
		}
		if pending[0].UserEmail != f.user.Email {
			t.Errorf("expected owner email joined, got %q", pending[0].UserEmail)
		}
	})

	t.Run("all returns every company", func(t *testing.T) {
		all, err := f.uc.All(ctx, f.admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected 2 companies, got %d", len(all))
		}
	})

	t.Run("client cannot use admin listings", func(t *testing.T) {
		if _, err := f.uc.Pending(ctx, f.owner); !domain.IsForbidden(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
		if _, err := f.uc.All(ctx, f.owner); !domain.IsForbidden(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}

func TestCompanyActivation(t *testing.T) {
	ctx := context.Background()

	t.Run("activate flips company and user and mails the owner", func(t *testing.T) {
		f := newCompanyFixture()

		if err := f.uc.Activate(ctx, f.admin, f.company.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.company.IsActive {
			t.Error("company must be active")
		}
		if !f.user.IsActive {
			t.Error("owning user must be active")
		}
		if len(f.mailer.sent) != 1 || f.mailer.sent[0].To != f.user.Email {
			t.Errorf("expected activation mail to owner, got %+v", f.mailer.sent)
		}
	})

	t.Run("deactivate locks both out without mail", func(t *testing.T) {
		f := newCompanyFixture()
		_ = f.comps.SetActive(ctx, f.company.ID, true)
		_ = f.users.SetActive(ctx, f.user.ID, true)

		if err := f.uc.Deactivate(ctx, f.admin, f.company.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.company.IsActive || f.user.IsActive {
			t.Error("deactivate must lock company and user out")
		}
		if len(f.mailer.sent) != 0 {
			t.Error("deactivation must not send mail")
		}
	})

	t.Run("client cannot activate", func(t *testing.T) {
		f := newCompanyFixture()

		if err := f.uc.Activate(ctx, f.owner, f.company.ID); !domain.IsForbidden(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}
