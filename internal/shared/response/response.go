package response

import (
	"go-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func NewPaginationMeta(total int64, page, pageSize int) PaginationMeta {
	return PaginationMeta{Total: total, Page: page, PageSize: pageSize}
}

// Success writes the payload as-is. Handlers shape their own envelopes, e.g.
// {"attendance": {...}} or {"leave_request": {...}}.
func Success(c *gin.Context, status int, payload gin.H) {
	c.JSON(status, payload)
}

// Error writes the uniform failure body {detail, type} with the status
// resolved from the error kind.
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, gin.H{
		"detail": httpErr.Detail,
		"type":   httpErr.Type,
	})
}

// BindingError maps a gin binding failure through the validation mapper
// before writing it.
func BindingError(c *gin.Context, err error) {
	Error(c, apperror.MapValidationError(err))
}
