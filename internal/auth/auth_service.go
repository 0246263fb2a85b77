package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	ChangePassword(ctx context.Context, employeeID string, req ChangePasswordRequest) error
	CurrentEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}

type service struct {
	employees employee.Repository
	cfg       config.Auth
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees employee.Repository, cfg config.Auth, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	e, err := s.employees.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("email", req.Email))
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !e.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveEmployee
	}

	access, err := s.signToken(e, s.cfg.AccessTokenExpiry, "")
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, err := s.signToken(e, s.cfg.RefreshTokenExpiry, "refresh")
	if err != nil {
		return TokenResponse{}, err
	}

	s.logger.Info("login success", zap.String("employee_id", e.ID.String()))
	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		Employee:     employee.ToResponse(*e),
	}, nil
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error) {
	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	e, err := s.employees.FindByID(ctx, sub)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}
	if !e.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveEmployee
	}

	access, err := s.signToken(e, s.cfg.AccessTokenExpiry, "")
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
		Employee:    employee.ToResponse(*e),
	}, nil
}

// ChangePassword re-verifies the old password before storing the new hash; a
// valid token alone is not enough to rotate credentials.
func (s *service) ChangePassword(ctx context.Context, employeeID string, req ChangePasswordRequest) error {
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidToken
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.OldPassword)); err != nil {
		s.logger.Warn("change password old password mismatch",
			zap.String("employee_id", employeeID),
		)
		return autherrors.ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	if err := s.employees.Update(ctx, e); err != nil {
		s.logger.Error("change password persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("password changed", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) CurrentEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.EmployeeResponse{}, autherrors.ErrInvalidToken
		}
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(*e), nil
}

func (s *service) signToken(e *employee.Employee, ttl time.Duration, tokenType string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":   e.ID.String(),
		"role":  e.Role,
		"email": e.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	if tokenType != "" {
		claims["type"] = tokenType
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
