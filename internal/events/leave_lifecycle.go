package events

import "time"

const (
	LeaveRequestedTopic = "leave.request.submitted.v1"
	LeaveApprovedTopic  = "leave.request.approved.v1"
	LeaveRejectedTopic  = "leave.request.rejected.v1"
)

type LeaveRequestedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LeaveApprovedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalDays  int       `json:"total_days"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LeaveRejectedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason"`
	RejectedBy string    `json:"rejected_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
