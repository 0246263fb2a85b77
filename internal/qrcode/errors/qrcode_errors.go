package qrcodeerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrQRCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"QR code not found",
		http.StatusNotFound,
	)
	ErrInvalidQRCode = apperror.New(
		apperror.CodeValidation,
		"Invalid QR code",
		http.StatusBadRequest,
	)
	ErrAlreadyInactive = apperror.New(
		apperror.CodeBusinessLogic,
		"QR code is already deactivated",
		http.StatusBadRequest,
	)
)
