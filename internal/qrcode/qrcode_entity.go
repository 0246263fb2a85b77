package qrcode

import (
	"time"

	"github.com/google/uuid"
)

type QRCode struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Code         string    `gorm:"column:code;type:varchar(255);not null;uniqueIndex"`
	LocationName string    `gorm:"column:location_name;type:varchar(100);not null"`
	Latitude     float64   `gorm:"column:latitude;not null"`
	Longitude    float64   `gorm:"column:longitude;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}
