package leaveerrors

import (
	"fmt"
	"net/http"
	"strings"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"Start date cannot be after end date",
		http.StatusBadRequest,
	)
	ErrPastStartDate = apperror.New(
		apperror.CodeValidation,
		"Cannot request leave for past dates",
		http.StatusBadRequest,
	)
	ErrLeaveConflict = apperror.New(
		apperror.CodeBusinessLogic,
		"Leave request conflicts with existing approved/pending leave",
		http.StatusBadRequest,
	)
	ErrNotFoundOrProcessed = apperror.New(
		apperror.CodeBusinessLogic,
		"Leave request not found or already processed",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeBusinessLogic,
		"Leave request not found",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to cancel this request",
		http.StatusForbidden,
	)
	ErrCancelNotPending = apperror.New(
		apperror.CodeBusinessLogic,
		"Can only cancel pending requests",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeValidation,
		"A rejection reason is required",
		http.StatusBadRequest,
	)
)

// InsufficientBalance names the exhausted leave type in the message.
func InsufficientBalance(leaveType string) *apperror.AppError {
	return apperror.New(
		apperror.CodeBusinessLogic,
		fmt.Sprintf("Insufficient %s leave balance", strings.ToLower(leaveType)),
		http.StatusBadRequest,
	)
}
