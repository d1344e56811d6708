package auth

import (
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

const testSecret = "test-secret-key-for-jwt-tests"

func createJWTServiceForTest(ttl time.Duration) domain.TokenService {
	return NewJWTService(testSecret, "course-in", ttl)
}

func testAccount() *domain.Account {
	return &domain.Account{
		Username: "alice",
		Email:    "alice@x.com",
		Enabled:  true,
		Roles:    []string{"user", "admin"},
	}
}

func TestJWTServiceImpl_MintAndValidate(t *testing.T) {
	svc := createJWTServiceForTest(time.Hour)

	token, err := svc.Mint(testAccount())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject alice, got %s", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "user" || claims.Roles[1] != "admin" {
		t.Errorf("unexpected roles %v", claims.Roles)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry must be after issuance")
	}
}

func TestJWTServiceImpl_MintUniqueTokens(t *testing.T) {
	svc := createJWTServiceForTest(time.Hour)
	account := testAccount()

	first, err := svc.Mint(account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Mint(account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The jti claim makes every mint distinct.
	if first == second {
		t.Error("expected distinct tokens per mint")
	}
}

func TestJWTServiceImpl_MintCarriesTokenID(t *testing.T) {
	svc := createJWTServiceForTest(time.Hour)

	token, err := svc.Mint(testAccount())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jti, ok := parsed.Claims.(jwt.MapClaims)["jti"].(string)
	if !ok {
		t.Fatal("expected a jti claim")
	}
	if len(jti) != 32 {
		t.Errorf("expected a 16-byte hex token id, got %q", jti)
	}
	if _, err := hex.DecodeString(jti); err != nil {
		t.Errorf("jti %q is not hex: %v", jti, err)
	}
}

func TestJWTServiceImpl_Validate(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		svc := createJWTServiceForTest(-time.Minute)

		token, err := svc.Mint(testAccount())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := createJWTServiceForTest(time.Hour)

		if _, err := svc.Validate("not.a.jwt"); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("expected ErrTokenMalformed, got %v", err)
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewJWTService("a-different-secret", "course-in", time.Hour)
		token, err := other.Mint(testAccount())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		svc := createJWTServiceForTest(time.Hour)
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("unexpected signing algorithm", func(t *testing.T) {
		// A token signed with none must never validate.
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub":   "alice",
			"roles": []string{"admin"},
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		svc := createJWTServiceForTest(time.Hour)
		if _, err := svc.Validate(token); err == nil {
			t.Error("expected validation to fail")
		}
	})

	t.Run("missing subject claim", func(t *testing.T) {
		signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"roles": []string{"user"},
			"iat":   time.Now().Unix(),
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		token, err := signed.SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		svc := createJWTServiceForTest(time.Hour)
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("expected ErrTokenMalformed, got %v", err)
		}
	})
}
