package domain

import "context"

// Principal is the authenticated identity seen by the boundary layer.
// Account is the canonical implementation.
type Principal interface {
	Identity() string
	RoleNames() []string
	IsEnabled() bool
}

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*Account, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Enable(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// OtpRepository defines one-time-code storage. Save is an upsert keyed
// by email: it replaces any prior credential for that email.
type OtpRepository interface {
	Save(ctx context.Context, cred *OtpCredential) error
	FindByEmail(ctx context.Context, email string) (*OtpCredential, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// ResetTokenRepository defines single-use reset token storage. Save
// replaces any prior live token for the same email (last write wins).
type ResetTokenRepository interface {
	Save(ctx context.Context, token *ResetToken) error
	FindByToken(ctx context.Context, token string) (*ResetToken, error)
	Delete(ctx context.Context, token *ResetToken) error
}

// OtpService issues, verifies and resends registration codes
type OtpService interface {
	Issue(ctx context.Context, email, username string) (*OtpCredential, error)
	Verify(ctx context.Context, email, code string) (*OtpCredential, error)
	Resend(ctx context.Context, email string) (*OtpCredential, error)
}

// ResetService issues and consumes password reset tokens
type ResetService interface {
	Issue(ctx context.Context, email string) (*ResetToken, error)
	Confirm(ctx context.Context, token, newPassword, confirmPassword string) error
}

// AuthService defines the credential workflows exposed over HTTP
type AuthService interface {
	Register(ctx context.Context, username, email, password, name string) (*OtpCredential, error)
	VerifyRegistration(ctx context.Context, email, code string) (*Account, string, error)
	ResendRegistration(ctx context.Context, email string) (*OtpCredential, error)
	Login(ctx context.Context, identifier, password string) (*Account, string, error)
	RequestPasswordReset(ctx context.Context, email string) (*ResetToken, error)
	ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error
	GetAccount(ctx context.Context, identifier string) (*Account, error)
	UpdatePassword(ctx context.Context, username, oldPassword, newPassword, confirmPassword string) error
}

// SecretHasher defines password hashing operations
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(hashedSecret, secret string) bool
}

// TokenService mints and validates stateless session tokens. Validity is
// decided by signature and expiry alone, never by a lookup.
type TokenService interface {
	Mint(account *Account) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// Notifier delivers a message to an address
type Notifier interface {
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
