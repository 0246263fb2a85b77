package employee

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
	FindSupervisors(ctx context.Context) ([]Employee, error)
	Departments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, e *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error
	return &e, err
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("employee_code ASC").
		Find(&rows).Error
	return rows, err
}

// FindSupervisors returns the active SUPERVISOR and ADMIN employees, the
// recipients of leave-request notifications.
func (r *repository) FindSupervisors(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("role IN ?", []string{RoleSupervisor, RoleAdmin}).
		Find(&rows).Error
	return rows, err
}

// Departments lists the distinct departments of active employees.
func (r *repository) Departments(ctx context.Context) ([]string, error) {
	var rows []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("is_active = ?", true).
		Where("department IS NOT NULL").
		Distinct().
		Order("department ASC").
		Pluck("department", &rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}
