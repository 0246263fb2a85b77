package notification

import (
	"net/http"
	"strconv"

	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), c.GetString("employee_id"), (page-1)*limit, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"notifications": resp,
		"meta":          response.NewPaginationMeta(int64(len(resp)), page, limit),
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	resp, err := h.service.MarkRead(c.Request.Context(), c.Param("id"), c.GetString("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notification": resp})
}
