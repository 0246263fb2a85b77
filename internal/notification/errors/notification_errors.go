package notificationerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)
	ErrNotRecipient = apperror.New(
		apperror.CodeForbidden,
		"Not the recipient of this notification",
		http.StatusForbidden,
	)
)
