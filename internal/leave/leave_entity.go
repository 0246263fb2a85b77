package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	TypeSick      = "SICK"
	TypeVacation  = "VACATION"
	TypePersonal  = "PERSONAL"
	TypeEmergency = "EMERGENCY"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
)

// Types lists every leave type; balance reports iterate it in this order.
var Types = []string{TypeSick, TypeVacation, TypePersonal, TypeEmergency, TypeMaternity, TypePaternity}

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_requests_employee_dates"`

	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays int       `gorm:"column:total_days;type:int;not null;default:1"`
	Reason    string    `gorm:"column:reason;type:text;not null"`

	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	ApprovedBy      *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt      *time.Time `gorm:"column:approved_at;type:timestamptz"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// EmployeeRef is the slim join target for calendar views.
type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// ContainsDate reports whether the request's closed interval covers d.
func (l LeaveRequest) ContainsDate(d time.Time) bool {
	return !d.Before(l.StartDate) && !d.After(l.EndDate)
}
