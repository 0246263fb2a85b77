package auth_test

import (
	"context"
	"testing"
	"time"

	"go-attendance/internal/auth"
	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn          func(ctx context.Context, e *employee.Employee) error
	findByIDFn        func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn     func(ctx context.Context, email string) (*employee.Employee, error)
	findActiveFn      func(ctx context.Context) ([]employee.Employee, error)
	findSupervisorsFn func(ctx context.Context) ([]employee.Employee, error)
	departmentsFn     func(ctx context.Context) ([]string, error)
	updateFn          func(ctx context.Context, e *employee.Employee) error
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindActive(ctx context.Context) ([]employee.Employee, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindSupervisors(ctx context.Context) ([]employee.Employee, error) {
	if f.findSupervisorsFn != nil {
		return f.findSupervisorsFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Departments(ctx context.Context) ([]string, error) {
	if f.departmentsFn != nil {
		return f.departmentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func testAuthConfig() config.Auth {
	return config.Auth{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  30 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

func activeEmployee(t *testing.T, password string) employee.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return employee.Employee{
		ID:           uuid.New(),
		EmployeeCode: "EMP001",
		Email:        "ada@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: string(hash),
		Role:         employee.RoleEmployee,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			assert.Equal(t, "ada@example.com", email)
			return &worker, nil
		}}
		svc := auth.NewService(repo, testAuthConfig())

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "Ada@Example.com ", Password: "s3cret-pass"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, worker.ID.String(), resp.Employee.ID)
	})

	t.Run("negative wrong password", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			return &worker, nil
		}}
		svc := auth.NewService(repo, testAuthConfig())

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepository{}, testAuthConfig())

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative inactive employee", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		worker.IsActive = false
		repo := &fakeEmployeeRepository{findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			return &worker, nil
		}}
		svc := auth.NewService(repo, testAuthConfig())

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, autherrors.ErrInactiveEmployee)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success round trip", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return &worker, nil
			},
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				assert.Equal(t, worker.ID.String(), id)
				return &worker, nil
			},
		}
		svc := auth.NewService(repo, testAuthConfig())

		login, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
		assert.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})

		assert.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Equal(t, worker.ID.String(), refreshed.Employee.ID)
	})

	t.Run("negative access token is not a refresh token", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return &worker, nil
			},
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &worker, nil
			},
		}
		svc := auth.NewService(repo, testAuthConfig())

		login, err := svc.Login(ctx, auth.LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.AccessToken})

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative garbage token", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepository{}, testAuthConfig())

		_, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: "not-a-jwt"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores a new hash", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &worker, nil
		}}
		var updated *employee.Employee
		repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}
		svc := auth.NewService(repo, testAuthConfig())

		err := svc.ChangePassword(ctx, worker.ID.String(), auth.ChangePasswordRequest{
			OldPassword: "s3cret-pass",
			NewPassword: "n3w-secret-pass",
		})

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("n3w-secret-pass")))
	})

	t.Run("negative wrong old password", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &worker, nil
		}}
		repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			t.Fatal("update must not be called when old password is wrong")
			return nil
		}
		svc := auth.NewService(repo, testAuthConfig())

		err := svc.ChangePassword(ctx, worker.ID.String(), auth.ChangePasswordRequest{
			OldPassword: "wrong",
			NewPassword: "n3w-secret-pass",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidOldPassword)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepository{}, testAuthConfig())

		err := svc.ChangePassword(ctx, uuid.New().String(), auth.ChangePasswordRequest{
			OldPassword: "s3cret-pass",
			NewPassword: "n3w-secret-pass",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestAuthService_CurrentEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		worker := activeEmployee(t, "s3cret-pass")
		repo := &fakeEmployeeRepository{findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &worker, nil
		}}
		svc := auth.NewService(repo, testAuthConfig())

		resp, err := svc.CurrentEmployee(ctx, worker.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.FullName)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepository{}, testAuthConfig())

		_, err := svc.CurrentEmployee(ctx, uuid.New().String())

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
