package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// UserHandlers handles authenticated account endpoints
type UserHandlers struct {
	authSvc domain.AuthService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService) *UserHandlers {
	return &UserHandlers{authSvc: authSvc}
}

// UpdatePasswordRequest represents an authenticated password change
type UpdatePasswordRequest struct {
	OldPassword        string `json:"oldPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,min=8"`
}

// GetUser returns the public profile for a username or email
func (h *UserHandlers) GetUser(c *gin.Context) {
	account, err := h.authSvc.GetAccount(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respond(c, http.StatusOK, toAccountResponse(account))
}

// UpdatePassword changes the password of an authenticated account
func (h *UserHandlers) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authSvc.UpdatePassword(
		c.Request.Context(),
		c.Param("username"),
		req.OldPassword,
		req.NewPassword,
		req.ConfirmNewPassword,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid password")
		case errors.Is(err, domain.ErrPasswordMismatch):
			respondError(c, http.StatusBadRequest, "New password and confirm password do not match")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	respond(c, http.StatusOK, nil)
}
