package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binar-final-project-kelompok7/course-in/domain"
)

// AuthHandlers handles the credential and verification HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name,omitempty" binding:"omitempty,max=255"`
}

// LoginRequest represents a login request; username also accepts an email
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyOtpRequest represents an OTP verification request
type VerifyOtpRequest struct {
	Email   string `json:"email" binding:"required,email"`
	OtpCode string `json:"otpCode" binding:"required,len=6,numeric"`
}

// ResendOtpRequest represents an OTP resend request
type ResendOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ConfirmForgotPasswordRequest represents a password reset confirmation
type ConfirmForgotPasswordRequest struct {
	Token              string `json:"token" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,min=8"`
}

// OtpResponse carries OTP metadata back to the caller. The code itself
// only ever travels through the notifier.
type OtpResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ResetTokenResponse carries reset token metadata
type ResetTokenResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// AccountResponse is the public view of an account
type AccountResponse struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Name     string   `json:"name,omitempty"`
	Enabled  bool     `json:"enabled"`
	Roles    []string `json:"roles"`
}

func toAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		Username: account.Username,
		Email:    account.Email,
		Name:     account.Name,
		Enabled:  account.Enabled,
		Roles:    account.Roles,
	}
}

// Register handles account registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	cred, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			respondError(c, http.StatusConflict, "User already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respond(c, http.StatusCreated, OtpResponse{Email: cred.Email, Username: cred.Username})
}

// VerifyOTP handles OTP verification. A successful verification enables
// the account and answers with a bearer session token.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, token, err := h.authSvc.VerifyRegistration(c.Request.Context(), req.Email, req.OtpCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOtpNotFound):
			respondError(c, http.StatusBadRequest, "Invalid OTP code or email")
		case errors.Is(err, domain.ErrOtpExpired):
			respondError(c, http.StatusBadRequest, "OTP code has expired")
		default:
			respondError(c, http.StatusInternalServerError, "OTP verification failed")
		}
		return
	}

	log.Printf("ACCOUNT_ACTIVATED: username=%s email=%s", account.Username, account.Email)

	c.Header("Authorization", "Bearer "+token)
	respond(c, http.StatusCreated, gin.H{"username": account.Username})
}

// ResendOTP handles OTP resend for a pending registration
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req ResendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	cred, err := h.authSvc.ResendRegistration(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrOtpNotFound) {
			respondError(c, http.StatusNotFound, "No pending OTP for this email")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to resend OTP")
		return
	}

	respond(c, http.StatusOK, OtpResponse{Email: cred.Email, Username: cred.Username})
}

// Login handles account login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, domain.ErrAccountDisabled):
			respondError(c, http.StatusUnauthorized, "Please verify your email first")
		default:
			respondError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	c.Header("Authorization", "Bearer "+token)
	respond(c, http.StatusOK, toAccountResponse(account))
}

// ForgotPassword handles a password reset request
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			respondError(c, http.StatusNotFound, "User email not found")
		case errors.Is(err, domain.ErrAccountDisabled):
			respondError(c, http.StatusBadRequest, "User is disabled, cannot request password reset")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to request password reset")
		}
		return
	}

	respond(c, http.StatusOK, ResetTokenResponse{Email: token.Email, Token: token.Token})
}

// ConfirmForgotPassword handles a password reset confirmation
func (h *AuthHandlers) ConfirmForgotPassword(c *gin.Context) {
	var req ConfirmForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authSvc.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrResetTokenNotFound):
			respondError(c, http.StatusNotFound, "Invalid reset token")
		case errors.Is(err, domain.ErrResetTokenExpired):
			respondError(c, http.StatusBadRequest, "Reset token has expired")
		case errors.Is(err, domain.ErrPasswordMismatch):
			respondError(c, http.StatusBadRequest, "New password and confirm password do not match")
		case errors.Is(err, domain.ErrAccountNotFound):
			respondError(c, http.StatusNotFound, "User email not found")
		case errors.Is(err, domain.ErrAccountDisabled):
			respondError(c, http.StatusBadRequest, "User is disabled, cannot reset password")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	respond(c, http.StatusOK, nil)
}
