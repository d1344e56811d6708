package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/binar-final-project-kelompok7/course-in/domain"
	httpx "github.com/binar-final-project-kelompok7/course-in/internal/http"
	"github.com/binar-final-project-kelompok7/course-in/internal/http/handlers"
	"github.com/binar-final-project-kelompok7/course-in/internal/http/middleware"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/auth"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/repositories"
	"github.com/binar-final-project-kelompok7/course-in/internal/mocks"
	"github.com/binar-final-project-kelompok7/course-in/internal/services"
	testconfig "github.com/binar-final-project-kelompok7/course-in/internal/tests/config"
)

// Matches config/rbac_model.conf; inlined so the suite runs hermetically.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// TestServer wires the full router over in-process infrastructure:
// sqlite for accounts and policies, miniredis for OTP and reset state,
// and a recording notifier instead of SMTP.
type TestServer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	Redis       *redis.Client
	Notifier    *mocks.MockNotifier
	AccountRepo domain.AccountRepository
	OtpRepo     domain.OtpRepository
	ResetRepo   domain.ResetTokenRepository
	AuthSvc     domain.AuthService
	PolicySvc   domain.PolicyService
	Hasher      domain.SecretHasher
}

// NewTestServer builds a fully wired test server
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	// A shared-cache in-memory DSN, named per test: a plain ":memory:"
	// gives every pooled connection its own empty database, so tables
	// migrated on one connection are missing on the next.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&repositories.DBAccount{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	enforcer := newTestEnforcer(t, db)

	accountRepo := repositories.NewAccountRepository(db)
	otpRepo := repositories.NewOtpRepository(redisClient)
	resetRepo := repositories.NewResetTokenRepository(redisClient)

	notifier := mocks.NewMockNotifier()
	hasher := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(testconfig.GetTestJWTSecret(), "course-in-test", 15*time.Minute)

	otpSvc := services.NewOTPService(otpRepo, notifier, 5*time.Minute)
	resetSvc := services.NewResetService(accountRepo, resetRepo, hasher, notifier, "https://test.course-in.local/reset?token=", 5*time.Minute)
	authSvc := services.NewAuthService(accountRepo, otpSvc, resetSvc, hasher, tokenSvc)
	policySvc := services.NewPolicyService(enforcer)

	seedTestPolicies(t, policySvc)

	router := httpx.BuildRouter(
		handlers.NewAuthHandlers(authSvc),
		handlers.NewUserHandlers(authSvc),
		handlers.NewPolicyHandlers(policySvc),
		middleware.NewAuthMW(tokenSvc),
		middleware.NewPolicyMW(policySvc),
	)

	return &TestServer{
		Router:      router,
		DB:          db,
		Redis:       redisClient,
		Notifier:    notifier,
		AccountRepo: accountRepo,
		OtpRepo:     otpRepo,
		ResetRepo:   resetRepo,
		AuthSvc:     authSvc,
		PolicySvc:   policySvc,
		Hasher:      hasher,
	}
}

func newTestEnforcer(t *testing.T, db *gorm.DB) *casbin.Enforcer {
	t.Helper()

	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		t.Fatalf("failed to create casbin adapter: %v", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		t.Fatalf("failed to parse casbin model: %v", err)
	}
	enforcer, err := casbin.NewEnforcer(m, adp)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		t.Fatalf("failed to load policy: %v", err)
	}
	return enforcer
}

func seedTestPolicies(t *testing.T, policySvc domain.PolicyService) {
	t.Helper()

	seeds := [][3]string{
		{"role_admin", "/api/v1/admin/*", "(GET)|(POST)|(PUT)|(DELETE)"},
		{"role_user", "/api/v1/users/*", "(GET)|(PUT)"},
	}
	for _, s := range seeds {
		if err := policySvc.AddPolicy(s[0], s[1], s[2]); err != nil {
			t.Fatalf("failed to seed policy %v: %v", s, err)
		}
	}
}

// DoJSON performs a request with a JSON body against the router
func (ts *TestServer) DoJSON(t *testing.T, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// Envelope decodes the uniform response envelope
func (ts *TestServer) Envelope(t *testing.T, w *httptest.ResponseRecorder) handlers.WebResponse {
	t.Helper()

	var resp handlers.WebResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return resp
}

// PendingOtpCode reads the live OTP code for an email straight from the
// registry, standing in for reading the verification email.
func (ts *TestServer) PendingOtpCode(t *testing.T, email string) string {
	t.Helper()

	cred, err := ts.OtpRepo.FindByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("no pending OTP credential for %s: %v", email, err)
	}
	return cred.Code
}

// RegisterAndVerify walks an account through the whole registration flow
// and returns the session token from verification.
func (ts *TestServer) RegisterAndVerify(t *testing.T, username, email, password string) string {
	t.Helper()

	w := ts.DoJSON(t, http.MethodPost, "/api/v1/auth/register", handlers.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Name:     username,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d: %s", w.Code, w.Body.String())
	}

	w = ts.DoJSON(t, http.MethodPost, "/api/v1/auth/verify-otp", handlers.VerifyOtpRequest{
		Email:   email,
		OtpCode: ts.PendingOtpCode(t, email),
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("verify-otp failed with status %d: %s", w.Code, w.Body.String())
	}

	authHeader := w.Header().Get("Authorization")
	if len(authHeader) <= len("Bearer ") {
		t.Fatalf("verify-otp returned no bearer token, header %q", authHeader)
	}
	return authHeader[len("Bearer "):]
}

// SeedAdmin creates an enabled admin account directly in the store and
// returns a session for it via login.
func (ts *TestServer) SeedAdmin(t *testing.T, username, email, password string) string {
	t.Helper()

	hash, err := ts.Hasher.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash admin password: %v", err)
	}
	account := &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Name:         "Admin",
		Enabled:      true,
		Roles:        []string{"admin"},
	}
	if err := ts.AccountRepo.Create(context.Background(), account); err != nil {
		t.Fatalf("failed to seed admin account: %v", err)
	}

	w := ts.DoJSON(t, http.MethodPost, "/api/v1/auth/login", handlers.LoginRequest{
		Username: username,
		Password: password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("admin login failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Header().Get("Authorization")[len("Bearer "):]
}
