package apperror

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// HTTPError is the wire form of an engine failure: {detail, type}.
type HTTPError struct {
	Status int
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// ToHTTP translates any error into its wire representation. AppErrors keep
// their code and status; gorm's not-found maps to 404; everything else is a
// masked 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status: appErr.HTTPStatus,
			Type:   strings.ToLower(appErr.Code),
			Detail: appErr.Message,
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HTTPError{
			Status: http.StatusNotFound,
			Type:   strings.ToLower(CodeNotFound),
			Detail: ErrNotFound.Message,
		}
	}

	return HTTPError{
		Status: http.StatusInternalServerError,
		Type:   strings.ToLower(CodeInternalError),
		Detail: ErrInternal.Message,
	}
}
