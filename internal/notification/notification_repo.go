package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]Notification, error)
	FindByID(ctx context.Context, id string) (*Notification, error)
	CountUnread(ctx context.Context, employeeID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]Notification, error) {
	var rows []Notification
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	return &n, err
}

func (r *repository) CountUnread(ctx context.Context, employeeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("employee_id = ? AND is_read = false", employeeID).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
