package employeeerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeBusinessLogic,
		"An employee with this email already exists",
		http.StatusBadRequest,
	)
	ErrCodeTaken = apperror.New(
		apperror.CodeBusinessLogic,
		"An employee with this code already exists",
		http.StatusBadRequest,
	)
	ErrAlreadyInactive = apperror.New(
		apperror.CodeBusinessLogic,
		"Employee is already deactivated",
		http.StatusBadRequest,
	)
)
