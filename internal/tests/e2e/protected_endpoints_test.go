package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binar-final-project-kelompok7/course-in/internal/http/handlers"
)

func TestProtectedEndpoints(t *testing.T) {
	ts := NewTestServer(t)
	userToken := ts.RegisterAndVerify(t, "alice", "alice@x.com", "supersecret")
	adminToken := ts.SeedAdmin(t, "root", "root@x.com", "admin-password")

	t.Run("no token answers 401", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodGet, "/api/v1/users/alice", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token answers 401", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodGet, "/api/v1/users/alice", nil, "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user token reads a profile", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodGet, "/api/v1/users/alice", nil, userToken)

		require.Equal(t, http.StatusOK, w.Code)
		resp := ts.Envelope(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "alice@x.com", data["email"])
	})

	t.Run("user token updates a password", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodPut, "/api/v1/users/update-password/alice", handlers.UpdatePasswordRequest{
			OldPassword:        "supersecret",
			NewPassword:        "rotated-password",
			ConfirmNewPassword: "rotated-password",
		}, userToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = ts.DoJSON(t, http.MethodPost, "/api/v1/auth/login", handlers.LoginRequest{
			Username: "alice",
			Password: "rotated-password",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user token is denied on the admin surface", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodGet, "/api/v1/admin/policies", nil, userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin token lists policies", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodGet, "/api/v1/admin/policies", nil, adminToken)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "role_admin")
	})

	t.Run("admin token manages policy rules", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodPost, "/api/v1/admin/policies", map[string]string{
			"role":     "role_user",
			"resource": "/api/v1/courses/*",
			"action":   "GET",
		}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = ts.DoJSON(t, http.MethodGet, "/api/v1/admin/policies", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/api/v1/courses/*")

		w = ts.DoJSON(t, http.MethodDelete, "/api/v1/admin/policies", map[string]string{
			"role":     "role_user",
			"resource": "/api/v1/courses/*",
			"action":   "GET",
		}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = ts.DoJSON(t, http.MethodGet, "/api/v1/admin/policies", nil, adminToken)
		assert.NotContains(t, w.Body.String(), "/api/v1/courses/*")
	})

	t.Run("health endpoint stays public", func(t *testing.T) {
		w := ts.DoJSON(t, http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
