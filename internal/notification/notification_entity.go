package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification categories. Late arrivals file under ATTENDANCE; the whole
// leave lifecycle files under LEAVE.
const (
	TypeAttendance = "ATTENDANCE"
	TypeLeave      = "LEAVE"
	TypeSystem     = "SYSTEM"
	TypeReminder   = "REMINDER"
)

// Notification is an append-only in-app message. The read flag is the only
// field that ever changes after insert.
type Notification struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	Type       string    `gorm:"column:type;type:varchar(30);not null"`
	Title      string    `gorm:"column:title;type:varchar(200);not null"`
	Message    string    `gorm:"column:message;type:text;not null"`
	IsRead     bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
