package autherrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInactiveEmployee = apperror.New(
		apperror.CodeUnauthorized,
		"This account has been deactivated",
		http.StatusUnauthorized,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrInvalidOldPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid old password",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
)
