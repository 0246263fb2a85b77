package employee

import (
	"context"
	"errors"
	"strings"

	employeeerrors "go-attendance/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) (EmployeeResponse, error)
	Departments(ctx context.Context) ([]string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := &Employee{
		ID:           uuid.New(),
		EmployeeCode: strings.ToUpper(strings.TrimSpace(req.EmployeeCode)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		Department:   req.Department,
		Position:     req.Position,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		if isUniqueViolation(err, "email") {
			return EmployeeResponse{}, employeeerrors.ErrEmailTaken
		}
		if isUniqueViolation(err, "employee_code") {
			return EmployeeResponse{}, employeeerrors.ErrCodeTaken
		}
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_code", e.EmployeeCode),
	)
	return ToResponse(*e), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return ToResponse(*e), nil
}

func (s *service) ListActive(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = ToResponse(e)
	}
	return res, nil
}

// Update applies a partial update; only the fields set in the request change.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		e.PhoneNumber = req.PhoneNumber
	}
	if req.Department != nil {
		e.Department = req.Department
	}
	if req.Position != nil {
		e.Position = req.Position
	}
	if req.Role != nil {
		e.Role = *req.Role
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee updated", zap.String("employee_id", id))
	return ToResponse(*e), nil
}

func (s *service) Departments(ctx context.Context) ([]string, error) {
	return s.repo.Departments(ctx)
}

// Deactivate is a soft delete: employees are never removed, only flagged
// inactive so attendance and leave history stays intact.
func (s *service) Deactivate(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	if !e.IsActive {
		return EmployeeResponse{}, employeeerrors.ErrAlreadyInactive
	}

	e.IsActive = false
	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("deactivate employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee deactivated", zap.String("employee_id", id))
	return ToResponse(*e), nil
}

func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, column)
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, column)
}
