package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee   = "EMPLOYEE"
	RoleSupervisor = "SUPERVISOR"
	RoleAdmin      = "ADMIN"
)

type Employee struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode string    `gorm:"column:employee_code;type:varchar(20);not null;uniqueIndex"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	PhoneNumber  *string   `gorm:"column:phone_number;type:varchar(20)"`
	Department   *string   `gorm:"column:department;type:varchar(100);index"`
	Position     *string   `gorm:"column:position;type:varchar(100)"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsSupervisor reports whether the employee can review leave requests and
// read reports.
func (e Employee) IsSupervisor() bool {
	return e.Role == RoleSupervisor || e.Role == RoleAdmin
}
