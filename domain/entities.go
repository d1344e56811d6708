package domain

import "time"

// Account represents a registered identity. Username and email are each
// globally unique. Enabled starts false and flips to true exactly once,
// through successful OTP verification.
type Account struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Enabled      bool
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity implements Principal
func (a *Account) Identity() string { return a.Username }

// RoleNames implements Principal
func (a *Account) RoleNames() []string { return a.Roles }

// IsEnabled implements Principal
func (a *Account) IsEnabled() bool { return a.Enabled }

// OtpCredential is a short-lived numeric registration code tied to an
// email and username pair. At most one live credential exists per email;
// issuing a new one replaces any prior one.
type OtpCredential struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the credential is past its expiry.
func (o *OtpCredential) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// ResetToken is a single-use password reset secret owned by an email.
type ResetToken struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token is past its expiry.
func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TokenClaims represents the claims carried by a session token
type TokenClaims struct {
	Subject   string   `json:"sub"`
	Roles     []string `json:"roles"`
	IssuedAt  int64    `json:"iat"`
	ExpiresAt int64    `json:"exp"`
}
