package leave

import (
	"net/http"
	"strconv"
	"time"

	leaveerrors "go-attendance/internal/leave/errors"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"leave_request": resp})
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"), c.GetString("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leave_request": resp})
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), c.Param("id"), c.GetString("employee_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leave_request": resp})
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("id"), c.GetString("employee_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Leave request cancelled"})
}

func (h *Handler) MyRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	resp, err := h.service.EmployeeRequests(c.Request.Context(), c.GetString("employee_id"), (page-1)*limit, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"leave_requests": resp,
		"meta":           response.NewPaginationMeta(int64(len(resp)), page, limit),
	})
}

func (h *Handler) Pending(c *gin.Context) {
	resp, err := h.service.PendingRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leave_requests": resp})
}

func (h *Handler) Balance(c *gin.Context) {
	year := time.Now().UTC().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, leaveerrors.ErrInvalidDateFormat)
			return
		}
		year = parsed
	}

	resp, err := h.service.Balance(c.Request.Context(), c.GetString("employee_id"), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"year": year, "balances": resp})
}

func (h *Handler) Calendar(c *gin.Context) {
	startDate, err := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.UTC)
	if err != nil {
		response.Error(c, leaveerrors.ErrInvalidDateFormat)
		return
	}
	endDate, err := time.ParseInLocation("2006-01-02", c.Query("end_date"), time.UTC)
	if err != nil {
		response.Error(c, leaveerrors.ErrInvalidDateFormat)
		return
	}

	resp, err := h.service.TeamCalendar(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"calendar": resp})
}
