package qrcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-attendance/internal/config"
	qrcodeerrors "go-attendance/internal/qrcode/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Generate(ctx context.Context, req GenerateQRCodeRequest) (QRCodeResponse, error)
	Validate(ctx context.Context, code string) (bool, error)
	Deactivate(ctx context.Context, id string) (QRCodeResponse, error)
	ListActive(ctx context.Context) ([]QRCodeResponse, error)
}

type service struct {
	repo   Repository
	cfg    config.QR
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, cfg config.QR, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, cfg, time.Now, logger...)
}

// NewServiceWithClock injects the clock; tests pin it to exercise the expiry
// boundary.
func NewServiceWithClock(repo Repository, cfg config.QR, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("qrcode.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("qrcode.service")
	}
	return &service{repo: repo, cfg: cfg, now: now, logger: l}
}

func (s *service) Generate(ctx context.Context, req GenerateQRCodeRequest) (QRCodeResponse, error) {
	now := s.now().UTC()

	// TODO: the timestamp suffix has second granularity, so two codes issued
	// for the same location within one second collide on the unique index;
	// needs a random suffix.
	code := fmt.Sprintf("%s%s_%s",
		s.cfg.Prefix,
		strings.ToUpper(strings.ReplaceAll(req.LocationName, " ", "_")),
		now.Format("20060102150405"),
	)

	q := &QRCode{
		ID:           uuid.New(),
		Code:         code,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsActive:     true,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, q); err != nil {
		s.logger.Error("generate qr code persist failed", zap.Error(err))
		return QRCodeResponse{}, err
	}

	s.logger.Info("qr code generated",
		zap.String("qr_code_id", q.ID.String()),
		zap.String("location", q.LocationName),
	)
	return mapToResponse(*q), nil
}

// Validate reports whether the code exists, is active, and has not passed its
// expiry window. Expired codes stay active in storage; deactivation is an
// explicit admin action, never a side effect of validation.
func (s *service) Validate(ctx context.Context, code string) (bool, error) {
	q, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !q.IsActive {
		return false, nil
	}

	expiry := q.CreatedAt.Add(time.Duration(s.cfg.ExpiryHours) * time.Hour)
	if s.now().UTC().After(expiry) {
		return false, nil
	}
	return true, nil
}

func (s *service) Deactivate(ctx context.Context, id string) (QRCodeResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QRCodeResponse{}, qrcodeerrors.ErrQRCodeNotFound
		}
		return QRCodeResponse{}, err
	}
	if !q.IsActive {
		return QRCodeResponse{}, qrcodeerrors.ErrAlreadyInactive
	}

	q.IsActive = false
	if err := s.repo.Update(ctx, q); err != nil {
		s.logger.Error("deactivate qr code persist failed",
			zap.String("qr_code_id", id),
			zap.Error(err),
		)
		return QRCodeResponse{}, err
	}

	s.logger.Info("qr code deactivated", zap.String("qr_code_id", id))
	return mapToResponse(*q), nil
}

func (s *service) ListActive(ctx context.Context) ([]QRCodeResponse, error) {
	rows, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]QRCodeResponse, len(rows))
	for i, q := range rows {
		res[i] = mapToResponse(q)
	}
	return res, nil
}
