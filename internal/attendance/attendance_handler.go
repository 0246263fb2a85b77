package attendance

import (
	"net/http"
	"strconv"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"attendance": resp})
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	resp, err := h.service.CheckOut(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": resp})
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": resp})
}

func (h *Handler) History(c *gin.Context) {
	startDate, endDate, ok := h.dateRange(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "31"))
	if limit < 1 || limit > 100 {
		limit = 31
	}

	resp, err := h.service.History(c.Request.Context(), c.GetString("employee_id"), startDate, endDate, (page-1)*limit, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"attendances": resp,
		"meta":        response.NewPaginationMeta(int64(len(resp)), page, limit),
	})
}

func (h *Handler) MonthlyStats(c *gin.Context) {
	now := h.now().UTC()
	year := now.Year()
	month := int(now.Month())
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, attendanceerrors.ErrInvalidDateFormat)
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, attendanceerrors.ErrInvalidMonth)
			return
		}
		month = parsed
	}

	resp, err := h.service.MonthlyStats(c.Request.Context(), c.GetString("employee_id"), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"year": year, "month": month, "stats": resp})
}

func (h *Handler) DailyReport(c *gin.Context) {
	date := h.now().UTC()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			response.Error(c, attendanceerrors.ErrInvalidDateFormat)
			return
		}
		date = parsed
	}

	resp, err := h.service.DailyReport(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "report": resp})
}

func (h *Handler) LateArrivals(c *gin.Context) {
	startDate, endDate, ok := h.dateRange(c)
	if !ok {
		return
	}

	resp, err := h.service.LateArrivals(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"late_arrivals": resp})
}

func (h *Handler) Overtime(c *gin.Context) {
	startDate, endDate, ok := h.dateRange(c)
	if !ok {
		return
	}

	resp, err := h.service.Overtime(c.Request.Context(), c.GetString("employee_id"), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"overtime": resp})
}

func (h *Handler) Sweep(c *gin.Context) {
	date := h.now().UTC()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			response.Error(c, attendanceerrors.ErrInvalidDateFormat)
			return
		}
		date = parsed
	}

	marked, err := h.service.MarkAbsentEmployees(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "marked_absent": marked})
}

// dateRange reads start_date/end_date, defaulting to the last 30 days.
func (h *Handler) dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := h.now().UTC()
	startDate := now.AddDate(0, 0, -30)
	endDate := now

	if v := c.Query("start_date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			response.Error(c, attendanceerrors.ErrInvalidDateFormat)
			return time.Time{}, time.Time{}, false
		}
		startDate = parsed
	}
	if v := c.Query("end_date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			response.Error(c, attendanceerrors.ErrInvalidDateFormat)
			return time.Time{}, time.Time{}, false
		}
		endDate = parsed
	}
	return startDate, endDate, true
}
