package leave

import (
	"time"

	"go-attendance/internal/employee"
)

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=SICK VACATION PERSONAL EMERGENCY MATERNITY PATERNITY"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// BalanceEntry is one leave type's annual ledger line.
type BalanceEntry struct {
	Allowance int `json:"allowance"`
	Taken     int `json:"taken"`
	Remaining int `json:"remaining"`
}

// CalendarEntry pairs an approved leave with the employee identity for
// supervisor visibility.
type CalendarEntry struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Leave    LeaveResponse             `json:"leave"`
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(rows []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		resp[i] = mapToResponse(l)
	}
	return resp
}
