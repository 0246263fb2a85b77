package qrcode

import "time"

type GenerateQRCodeRequest struct {
	LocationName string  `json:"location_name" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"required"`
	Longitude    float64 `json:"longitude" binding:"required"`
}

type ValidateQRCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type QRCodeResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

func mapToResponse(q QRCode) QRCodeResponse {
	return QRCodeResponse{
		ID:           q.ID.String(),
		Code:         q.Code,
		LocationName: q.LocationName,
		Latitude:     q.Latitude,
		Longitude:    q.Longitude,
		IsActive:     q.IsActive,
		CreatedAt:    q.CreatedAt.Format(time.RFC3339),
	}
}
