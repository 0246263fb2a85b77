package events

import "time"

const AttendanceLateTopic = "attendance.late.recorded.v1"

// AttendanceLateEvent is emitted when a check-in is classified LATE. Consumed
// by the notification dispatcher; dispatch is best-effort and never feeds back
// into the check-in.
type AttendanceLateEvent struct {
	EventType    string    `json:"event_type"`
	AttendanceID string    `json:"attendance_id"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"`
	CheckInTime  time.Time `json:"check_in_time"`
	OccurredAt   time.Time `json:"occurred_at"`
}
