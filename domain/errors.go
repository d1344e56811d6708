package domain

import "errors"

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountDisabled    = errors.New("account is not verified")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OTP errors
var (
	ErrOtpNotFound = errors.New("otp not found")
	ErrOtpExpired  = errors.New("otp has expired")
)

// Reset token errors
var (
	ErrResetTokenNotFound = errors.New("reset token not found")
	ErrResetTokenExpired  = errors.New("reset token has expired")
	ErrPasswordMismatch   = errors.New("new password and confirmation do not match")
)

// Session token errors
var (
	ErrTokenInvalid   = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
