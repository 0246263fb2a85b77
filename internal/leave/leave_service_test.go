package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-attendance/internal/config"
	"go-attendance/internal/leave"
	leaveerrors "go-attendance/internal/leave/errors"
	"go-attendance/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn                   func(tx *sql.Tx) leave.Repository
	createFn                   func(ctx context.Context, l *leave.LeaveRequest) error
	findByIDFn                 func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findByEmployeeFn           func(ctx context.Context, employeeID string, offset, limit int) ([]leave.LeaveRequest, error)
	findPendingFn              func(ctx context.Context) ([]leave.LeaveRequest, error)
	updateFn                   func(ctx context.Context, l *leave.LeaveRequest) error
	deleteFn                   func(ctx context.Context, id string) error
	hasOverlappingFn           func(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
	approvedDaysByTypeInYearFn func(ctx context.Context, employeeID string, year int) (map[string]int, error)
	countApprovedOnDateFn      func(ctx context.Context, employeeID string, date time.Time) (int64, error)
	findApprovedInPeriodFn     func(ctx context.Context, startDate, endDate time.Time) ([]leave.LeaveRequest, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]leave.LeaveRequest, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID, offset, limit)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	if f.findPendingFn != nil {
		return f.findPendingFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	if f.hasOverlappingFn != nil {
		return f.hasOverlappingFn(ctx, employeeID, startDate, endDate)
	}
	return false, nil
}

func (f *fakeLeaveRepository) ApprovedDaysByTypeInYear(ctx context.Context, employeeID string, year int) (map[string]int, error) {
	if f.approvedDaysByTypeInYearFn != nil {
		return f.approvedDaysByTypeInYearFn(ctx, employeeID, year)
	}
	return map[string]int{}, nil
}

func (f *fakeLeaveRepository) CountApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (int64, error) {
	if f.countApprovedOnDateFn != nil {
		return f.countApprovedOnDateFn(ctx, employeeID, date)
	}
	return 0, nil
}

func (f *fakeLeaveRepository) FindApprovedInPeriod(ctx context.Context, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	if f.findApprovedInPeriodFn != nil {
		return f.findApprovedInPeriodFn(ctx, startDate, endDate)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
	created  []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
	outbox  *fakeOutboxRepository
}

func testAllowances() config.Leave {
	return config.Leave{Allowances: map[string]int{
		"SICK":      10,
		"VACATION":  21,
		"PERSONAL":  5,
		"EMERGENCY": 3,
		"MATERNITY": 90,
		"PATERNITY": 15,
	}}
}

func setupLeaveServiceTest(t *testing.T, now time.Time) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	outbox := &fakeOutboxRepository{}
	svc := leave.NewServiceWithClock(db, repo, outbox, testAllowances(), func() time.Time { return now })

	return &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Family trip",
		}

		deps.repo.hasOverlappingFn = func(ctx context.Context, eid string, startDate, endDate time.Time) (bool, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, "2026-04-01", startDate.Format("2006-01-02"))
			assert.Equal(t, "2026-04-03", endDate.Format("2006-01-02"))
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, uuid.MustParse(employeeID), l.EmployeeID)
			assert.Equal(t, "VACATION", l.LeaveType)
			assert.Equal(t, 3, l.TotalDays)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := deps.service.Submit(ctx, employeeID, req)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "VACATION", resp.LeaveType)
		assert.Equal(t, 3, resp.TotalDays)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "leave.request.submitted", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success single day", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := leave.SubmitLeaveRequest{
			LeaveType: "SICK",
			StartDate: "2026-03-10",
			EndDate:   "2026-03-10",
			Reason:    "Flu",
		}

		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, 1, l.TotalDays)
			return nil
		}

		resp, err := deps.service.Submit(ctx, employeeID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.TotalDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative inverted date range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		req := leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "2026-04-05",
			EndDate:   "2026-04-01",
			Reason:    "Trip",
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
		assert.Empty(t, deps.outbox.created)
	})

	t.Run("negative past start date", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		req := leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "2026-03-09",
			EndDate:   "2026-03-11",
			Reason:    "Trip",
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrPastStartDate)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		req := leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "04/01/2026",
			EndDate:   "2026-04-03",
			Reason:    "Trip",
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		req := leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Trip",
		}

		deps.repo.hasOverlappingFn = func(ctx context.Context, eid string, startDate, endDate time.Time) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveConflict)
		assert.Empty(t, deps.outbox.created)
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		req := leave.SubmitLeaveRequest{
			LeaveType: "PERSONAL",
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Errands",
		}

		deps.repo.approvedDaysByTypeInYearFn = func(ctx context.Context, eid string, year int) (map[string]int, error) {
			assert.Equal(t, 2026, year)
			return map[string]int{"PERSONAL": 4}, nil
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient personal leave balance")
	})

	t.Run("success spends the remaining balance exactly", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := leave.SubmitLeaveRequest{
			LeaveType: "PERSONAL",
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Errands",
		}

		// Allowance 5, taken 2: the 3 requested days land on the boundary.
		deps.repo.approvedDaysByTypeInYearFn = func(ctx context.Context, eid string, year int) (map[string]int, error) {
			return map[string]int{"PERSONAL": 2}, nil
		}

		resp, err := deps.service.Submit(ctx, employeeID, req)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.TotalDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative malformed employee id", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, "not-a-uuid", leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Trip",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative persist error rolls back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		req := leave.SubmitLeaveRequest{
			LeaveType: "VACATION",
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Trip",
		}

		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			return errors.New("insert failed")
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.New(),
				LeaveType:  "VACATION",
				StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
				TotalDays:  3,
				Status:     leave.StatusPending,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, leave.StatusApproved, l.Status)
			assert.NotNil(t, l.ApprovedBy)
			assert.Equal(t, approverID, l.ApprovedBy.String())
			assert.NotNil(t, l.ApprovedAt)
			assert.Equal(t, testNow, *l.ApprovedAt)
			return nil
		}

		resp, err := deps.service.Approve(ctx, leaveID, approverID)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, approverID, *resp.ApprovedBy)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "leave.request.approved", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already processed", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:     uuid.MustParse(id),
				Status: leave.StatusApproved,
			}, nil
		}

		_, err := deps.service.Approve(ctx, leaveID, approverID)

		assert.ErrorIs(t, err, leaveerrors.ErrNotFoundOrProcessed)
		assert.Empty(t, deps.outbox.created)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Approve(ctx, leaveID, approverID)

		assert.ErrorIs(t, err, leaveerrors.ErrNotFoundOrProcessed)
	})

	t.Run("negative malformed approver id", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.New(),
				Status:     leave.StatusPending,
			}, nil
		}

		_, err := deps.service.Approve(ctx, leaveID, "not-a-uuid")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
		assert.Empty(t, deps.outbox.created)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.New(),
				LeaveType:  "SICK",
				StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				TotalDays:  1,
				Status:     leave.StatusPending,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, leave.StatusRejected, l.Status)
			assert.NotNil(t, l.RejectionReason)
			assert.Equal(t, "No coverage that week", *l.RejectionReason)
			return nil
		}

		resp, err := deps.service.Reject(ctx, leaveID, approverID, leave.RejectLeaveRequest{Reason: "No coverage that week"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.NotNil(t, resp.RejectionReason)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "leave.request.rejected", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already processed", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:     uuid.MustParse(id),
				Status: leave.StatusRejected,
			}, nil
		}

		_, err := deps.service.Reject(ctx, leaveID, approverID, leave.RejectLeaveRequest{Reason: "Late"})

		assert.ErrorIs(t, err, leaveerrors.ErrNotFoundOrProcessed)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New().String()
	ownerID := uuid.New().String()

	pendingOwnedBy := func(owner string) func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
		return func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.MustParse(owner),
				Status:     leave.StatusPending,
			}, nil
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = pendingOwnedBy(ownerID)
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			assert.Equal(t, leaveID, id)
			deleted = true
			return nil
		}

		err := deps.service.Cancel(ctx, leaveID, ownerID)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("negative not owner", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = pendingOwnedBy(uuid.New().String())

		err := deps.service.Cancel(ctx, leaveID, ownerID)

		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})

	t.Run("negative not pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.MustParse(ownerID),
				Status:     leave.StatusApproved,
			}, nil
		}

		err := deps.service.Cancel(ctx, leaveID, ownerID)

		assert.ErrorIs(t, err, leaveerrors.ErrCancelNotPending)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		err := deps.service.Cancel(ctx, leaveID, ownerID)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Balance(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.approvedDaysByTypeInYearFn = func(ctx context.Context, eid string, year int) (map[string]int, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, 2026, year)
			return map[string]int{"VACATION": 5, "SICK": 2}, nil
		}

		balances, err := deps.service.Balance(ctx, employeeID, 2026)

		assert.NoError(t, err)
		assert.Len(t, balances, 6)
		assert.Equal(t, leave.BalanceEntry{Allowance: 21, Taken: 5, Remaining: 16}, balances["VACATION"])
		assert.Equal(t, leave.BalanceEntry{Allowance: 10, Taken: 2, Remaining: 8}, balances["SICK"])
		assert.Equal(t, leave.BalanceEntry{Allowance: 5, Taken: 0, Remaining: 5}, balances["PERSONAL"])
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.approvedDaysByTypeInYearFn = func(ctx context.Context, eid string, year int) (map[string]int, error) {
			return nil, errors.New("db error")
		}

		balances, err := deps.service.Balance(ctx, employeeID, 2026)

		assert.Error(t, err)
		assert.Nil(t, balances)
	})
}

func TestLeaveService_IsEmployeeOnLeave(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success on leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		deps.repo.countApprovedOnDateFn = func(ctx context.Context, eid string, date time.Time) (int64, error) {
			assert.Equal(t, "2026-03-10", date.Format("2006-01-02"))
			return 1, nil
		}

		onLeave, err := deps.service.IsEmployeeOnLeave(ctx, employeeID, testNow)

		assert.NoError(t, err)
		assert.True(t, onLeave)
	})

	t.Run("success not on leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		onLeave, err := deps.service.IsEmployeeOnLeave(ctx, employeeID, testNow)

		assert.NoError(t, err)
		assert.False(t, onLeave)
	})
}

func TestLeaveService_TeamCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		employeeID := uuid.New()
		deps.repo.findApprovedInPeriodFn = func(ctx context.Context, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{
				{
					ID:         uuid.New(),
					EmployeeID: employeeID,
					LeaveType:  "VACATION",
					StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
					EndDate:    time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
					TotalDays:  3,
					Status:     leave.StatusApproved,
					Employee: &leave.EmployeeRef{
						ID:           employeeID,
						EmployeeCode: "EMP001",
						FirstName:    "Ada",
						LastName:     "Lovelace",
						Email:        "ada@example.com",
					},
				},
			}, nil
		}

		entries, err := deps.service.TeamCalendar(ctx,
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		)

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Ada Lovelace", entries[0].Employee.FullName)
		assert.Equal(t, "VACATION", entries[0].Leave.LeaveType)
	})

	t.Run("negative inverted range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, testNow)
		defer deps.db.Close()

		_, err := deps.service.TeamCalendar(ctx,
			time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}
