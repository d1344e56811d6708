package services

import (
	"context"
	"errors"
	"testing"

	"github.com/binar-final-project-kelompok7/course-in/domain"
	"github.com/binar-final-project-kelompok7/course-in/internal/mocks"
)

type authServiceFixture struct {
	accountRepo *mocks.MockAccountRepository
	otpSvc      *mocks.MockOtpService
	resetSvc    *mocks.MockResetService
	hasher      *mocks.MockSecretHasher
	tokenSvc    *mocks.MockTokenService
	svc         domain.AuthService
}

func createAuthServiceForTest(t *testing.T) *authServiceFixture {
	t.Helper()

	f := &authServiceFixture{
		accountRepo: mocks.NewMockAccountRepository(),
		otpSvc:      mocks.NewMockOtpService(),
		resetSvc:    mocks.NewMockResetService(),
		hasher:      mocks.NewMockSecretHasher(),
		tokenSvc:    mocks.NewMockTokenService(),
	}
	f.svc = NewAuthService(f.accountRepo, f.otpSvc, f.resetSvc, f.hasher, f.tokenSvc)
	return f
}

func TestAuthServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending account with the default role", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		var created *domain.Account
		f.accountRepo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
			created = account
			return nil
		}
		f.otpSvc.IssueFunc = func(ctx context.Context, email, username string) (*domain.OtpCredential, error) {
			return &domain.OtpCredential{Code: "123456", Email: email, Username: username}, nil
		}

		cred, err := f.svc.Register(ctx, "alice", "alice@x.com", "secret", "Alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatal("account was not created")
		}
		if created.Enabled {
			t.Error("new account must start disabled")
		}
		if created.PasswordHash != "hashed:secret" {
			t.Errorf("password must be hashed before storage, got %q", created.PasswordHash)
		}
		if len(created.Roles) != 1 || created.Roles[0] != DefaultRole {
			t.Errorf("expected roles [%s], got %v", DefaultRole, created.Roles)
		}
		if cred.Email != "alice@x.com" || cred.Username != "alice" {
			t.Errorf("otp issued for wrong identity: %+v", cred)
		}
	})

	t.Run("duplicate username or email is rejected", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.accountRepo.ExistsByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (bool, error) {
			return true, nil
		}
		f.accountRepo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
			t.Error("no account must be created for a duplicate")
			return nil
		}

		if _, err := f.svc.Register(ctx, "alice", "alice@x.com", "secret", "Alice"); !errors.Is(err, domain.ErrAccountExists) {
			t.Errorf("expected ErrAccountExists, got %v", err)
		}
	})
}

func TestAuthServiceImpl_VerifyRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("activates the account and mints a session", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		f.otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (*domain.OtpCredential, error) {
			return &domain.OtpCredential{Code: code, Email: email, Username: "alice"}, nil
		}
		enabled := false
		f.accountRepo.EnableFunc = func(ctx context.Context, email string) error {
			enabled = true
			return nil
		}
		f.accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
			return &domain.Account{Username: "alice", Email: email, Enabled: true, Roles: []string{"user"}}, nil
		}

		account, token, err := f.svc.VerifyRegistration(ctx, "alice@x.com", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !enabled {
			t.Error("account was not enabled")
		}
		if account.Username != "alice" {
			t.Errorf("unexpected account %+v", account)
		}
		if token != "token-alice" {
			t.Errorf("expected a minted session token, got %q", token)
		}
	})

	t.Run("bad code leaves the account pending", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		f.otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (*domain.OtpCredential, error) {
			return nil, domain.ErrOtpNotFound
		}
		f.accountRepo.EnableFunc = func(ctx context.Context, email string) error {
			t.Error("account must not be enabled on a failed verification")
			return nil
		}

		if _, _, err := f.svc.VerifyRegistration(ctx, "alice@x.com", "000000"); !errors.Is(err, domain.ErrOtpNotFound) {
			t.Errorf("expected ErrOtpNotFound, got %v", err)
		}
	})

	t.Run("expired code surfaces as expired", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		f.otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (*domain.OtpCredential, error) {
			return nil, domain.ErrOtpExpired
		}

		if _, _, err := f.svc.VerifyRegistration(ctx, "alice@x.com", "123456"); !errors.Is(err, domain.ErrOtpExpired) {
			t.Errorf("expected ErrOtpExpired, got %v", err)
		}
	})
}

func TestAuthServiceImpl_ResendRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("live credential is resent as-is", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.otpSvc.ResendFunc = func(ctx context.Context, email string) (*domain.OtpCredential, error) {
			return &domain.OtpCredential{Code: "654321", Email: email, Username: "alice"}, nil
		}
		f.accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
			t.Error("no account lookup needed when a credential is live")
			return nil, domain.ErrAccountNotFound
		}

		cred, err := f.svc.ResendRegistration(ctx, "alice@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cred.Code != "654321" {
			t.Errorf("unexpected credential %+v", cred)
		}
	})

	t.Run("pending account with no credential gets a fresh one", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.otpSvc.ResendFunc = func(ctx context.Context, email string) (*domain.OtpCredential, error) {
			return nil, domain.ErrOtpNotFound
		}
		f.accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
			return &domain.Account{Username: "alice", Email: email, Enabled: false}, nil
		}
		issued := false
		f.otpSvc.IssueFunc = func(ctx context.Context, email, username string) (*domain.OtpCredential, error) {
			issued = true
			return &domain.OtpCredential{Code: "111111", Email: email, Username: username}, nil
		}

		cred, err := f.svc.ResendRegistration(ctx, "alice@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !issued {
			t.Error("expected a fresh credential to be issued")
		}
		if cred.Username != "alice" {
			t.Errorf("reissue should keep the account username, got %s", cred.Username)
		}
	})

	t.Run("active account reports not found", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
			return &domain.Account{Username: "alice", Email: email, Enabled: true}, nil
		}
		f.otpSvc.IssueFunc = func(ctx context.Context, email, username string) (*domain.OtpCredential, error) {
			t.Error("no credential must be issued for an active account")
			return nil, nil
		}

		if _, err := f.svc.ResendRegistration(ctx, "alice@x.com"); !errors.Is(err, domain.ErrOtpNotFound) {
			t.Errorf("expected ErrOtpNotFound, got %v", err)
		}
	})

	t.Run("unknown email reports not found", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		if _, err := f.svc.ResendRegistration(ctx, "nobody@x.com"); !errors.Is(err, domain.ErrOtpNotFound) {
			t.Errorf("expected ErrOtpNotFound, got %v", err)
		}
	})
}

func TestAuthServiceImpl_Login(t *testing.T) {
	ctx := context.Background()

	activeAccount := func() *domain.Account {
		return &domain.Account{
			Username:     "alice",
			Email:        "alice@x.com",
			PasswordHash: "hashed:secret",
			Enabled:      true,
			Roles:        []string{"user"},
		}
	}

	t.Run("valid credentials on an active account mint a session", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.accountRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, identifier string) (*domain.Account, error) {
			return activeAccount(), nil
		}

		account, token, err := f.svc.Login(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.Email != "alice@x.com" {
			t.Errorf("unexpected account %+v", account)
		}
		if token != "token-alice" {
			t.Errorf("expected a minted session token, got %q", token)
		}
	})

	t.Run("unknown identifier fails", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		if _, _, err := f.svc.Login(ctx, "nobody", "secret"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("wrong password fails before the enabled check", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.accountRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, identifier string) (*domain.Account, error) {
			a := activeAccount()
			a.Enabled = false
			return a, nil
		}

		if _, _, err := f.svc.Login(ctx, "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("correct password on a pending account is rejected", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		f.accountRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, identifier string) (*domain.Account, error) {
			a := activeAccount()
			a.Enabled = false
			return a, nil
		}

		if _, _, err := f.svc.Login(ctx, "alice", "secret"); !errors.Is(err, domain.ErrAccountDisabled) {
			t.Errorf("expected ErrAccountDisabled, got %v", err)
		}
	})
}

func TestAuthServiceImpl_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	withAlice := func(f *authServiceFixture) {
		f.accountRepo.FindByUsernameFunc = func(ctx context.Context, username string) (*domain.Account, error) {
			if username != "alice" {
				return nil, domain.ErrAccountNotFound
			}
			return &domain.Account{
				Username:     "alice",
				Email:        "alice@x.com",
				PasswordHash: "hashed:old-pw",
				Enabled:      true,
			}, nil
		}
	}

	t.Run("success stores the new hash under the account email", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		withAlice(f)

		var gotEmail, gotHash string
		f.accountRepo.UpdatePasswordFunc = func(ctx context.Context, email, passwordHash string) error {
			gotEmail, gotHash = email, passwordHash
			return nil
		}

		if err := f.svc.UpdatePassword(ctx, "alice", "old-pw", "new-pw", "new-pw"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotEmail != "alice@x.com" || gotHash != "hashed:new-pw" {
			t.Errorf("unexpected update (%s, %s)", gotEmail, gotHash)
		}
	})

	t.Run("wrong old password fails", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		withAlice(f)

		if err := f.svc.UpdatePassword(ctx, "alice", "wrong", "new-pw", "new-pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("confirmation mismatch fails", func(t *testing.T) {
		f := createAuthServiceForTest(t)
		withAlice(f)

		if err := f.svc.UpdatePassword(ctx, "alice", "old-pw", "new-pw", "other"); !errors.Is(err, domain.ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("unknown account fails", func(t *testing.T) {
		f := createAuthServiceForTest(t)

		if err := f.svc.UpdatePassword(ctx, "nobody", "a", "b", "b"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
