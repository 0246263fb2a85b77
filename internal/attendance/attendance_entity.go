package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusEarly          = "EARLY"
	StatusOnTime         = "ON_TIME"
	StatusLate           = "LATE"
	StatusAbsent         = "ABSENT"
	StatusPlannedAbsence = "PLANNED_ABSENCE"
	StatusOnLeave        = "ON_LEAVE"
)

// Attendance is the single daily record per employee. The composite unique
// index is the hard guarantee behind the duplicate check-in rule; the service
// level check only gives the nicer error message.
type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`

	CheckInTime  *time.Time `gorm:"column:check_in_time;type:timestamptz"`
	CheckOutTime *time.Time `gorm:"column:check_out_time;type:timestamptz"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;index"`

	Latitude   *float64 `gorm:"column:latitude;type:double precision"`
	Longitude  *float64 `gorm:"column:longitude;type:double precision"`
	QRCodeData *string  `gorm:"column:qr_code_data;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is the slim join target for report views.
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
