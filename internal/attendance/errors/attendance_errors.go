package attendanceerrors

import (
	"fmt"
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeBusinessLogic,
		"Already checked in today",
		http.StatusBadRequest,
	)
	ErrNoCheckInToday = apperror.New(
		apperror.CodeBusinessLogic,
		"No check-in found for today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeBusinessLogic,
		"Already checked out today",
		http.StatusBadRequest,
	)
	ErrInvalidQRCode = apperror.New(
		apperror.CodeValidation,
		"Invalid or expired QR code",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeValidation,
		"Month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee id",
		http.StatusBadRequest,
	)
)

// TooFarFromOffice reports the measured distance so the client can show how
// far off the employee is.
func TooFarFromOffice(distanceMeters, maxMeters float64) *apperror.AppError {
	return apperror.New(
		apperror.CodeValidation,
		fmt.Sprintf("You are %.0fm away from the office. Must be within %.0fm to check in", distanceMeters, maxMeters),
		http.StatusBadRequest,
	)
}
