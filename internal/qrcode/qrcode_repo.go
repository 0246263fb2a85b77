package qrcode

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, q *QRCode) error
	FindByCode(ctx context.Context, code string) (*QRCode, error)
	FindByID(ctx context.Context, id string) (*QRCode, error)
	FindActive(ctx context.Context) ([]QRCode, error)
	Update(ctx context.Context, q *QRCode) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, q *QRCode) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) FindByCode(ctx context.Context, code string) (*QRCode, error) {
	var q QRCode
	err := r.db.WithContext(ctx).First(&q, "code = ?", code).Error
	return &q, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*QRCode, error) {
	var q QRCode
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	return &q, err
}

func (r *repository) FindActive(ctx context.Context) ([]QRCode, error) {
	var rows []QRCode
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, q *QRCode) error {
	return r.db.WithContext(ctx).Save(q).Error
}
