package domain

import (
	"testing"
	"time"
)

func TestOtpCredentialExpired(t *testing.T) {
	now := time.Now()
	cred := &OtpCredential{Code: "123456", Email: "a@x.com", ExpiresAt: now.Add(5 * time.Minute)}

	if cred.Expired(now) {
		t.Error("credential should be live before its expiry")
	}
	if !cred.Expired(now.Add(6 * time.Minute)) {
		t.Error("credential should be expired after its expiry")
	}
}

func TestResetTokenExpired(t *testing.T) {
	now := time.Now()
	token := &ResetToken{Token: "t", Email: "a@x.com", ExpiresAt: now.Add(5 * time.Minute)}

	if token.Expired(now) {
		t.Error("token should be live before its expiry")
	}
	if !token.Expired(now.Add(6 * time.Minute)) {
		t.Error("token should be expired after its expiry")
	}
}

func TestAccountPrincipal(t *testing.T) {
	account := &Account{Username: "alice", Roles: []string{"user", "admin"}, Enabled: true}

	var p Principal = account
	if p.Identity() != "alice" {
		t.Errorf("unexpected identity %s", p.Identity())
	}
	if len(p.RoleNames()) != 2 {
		t.Errorf("unexpected roles %v", p.RoleNames())
	}
	if !p.IsEnabled() {
		t.Error("expected enabled principal")
	}
}
