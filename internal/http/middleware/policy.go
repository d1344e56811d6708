package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// PolicyMW enforces the (role, path, method) policy table on requests
// that passed authentication.
type PolicyMW struct {
	policySvc domain.PolicyService
}

// NewPolicyMW creates new policy middleware wrapper
func NewPolicyMW(policySvc domain.PolicyService) *PolicyMW {
	return &PolicyMW{policySvc: policySvc}
}

// Enforce returns the authorization middleware. A request is allowed
// when any of the principal's roles is permitted for the path and method.
func (mw *PolicyMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		rawRoles, exists := c.Get(ContextRoles)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Roles not found in token"})
			c.Abort()
			return
		}

		roles, ok := rawRoles.([]string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Roles not found in token"})
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		method := c.Request.Method

		allowed := false
		for _, role := range roles {
			ok, err := mw.policySvc.CheckPermission("role_"+role, path, method)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
				c.Abort()
				return
			}
			if ok {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}
