package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/events"
	leaveerrors "go-attendance/internal/leave/errors"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/geoutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, leaveID, approverID string) (LeaveResponse, error)
	Reject(ctx context.Context, leaveID, approverID string, req RejectLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, leaveID, employeeID string) error
	Balance(ctx context.Context, employeeID string, year int) (map[string]BalanceEntry, error)
	IsEmployeeOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
	TeamCalendar(ctx context.Context, startDate, endDate time.Time) ([]CalendarEntry, error)
	PendingRequests(ctx context.Context) ([]LeaveResponse, error)
	EmployeeRequests(ctx context.Context, employeeID string, offset, limit int) ([]LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	cfg    config.Leave
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, cfg config.Leave, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, outbox, cfg, time.Now, logger...)
}

// NewServiceWithClock injects the clock; tests pin it to exercise the
// past-date boundary.
func NewServiceWithClock(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, cfg config.Leave, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, cfg: cfg, now: now, logger: l}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave request",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
	)

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	if startDate.After(endDate) {
		s.logger.Warn("leave date range inverted",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	today := geoutil.DateOnly(s.now().UTC())
	if startDate.Before(today) {
		s.logger.Warn("leave starts in the past",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
		)
		return LeaveResponse{}, leaveerrors.ErrPastStartDate
	}

	// Duration counts both endpoints: a one-day leave has equal start and end.
	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	overlaps, err := s.repo.HasOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.logger.Error("leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlaps {
		s.logger.Warn("leave request conflicts with existing leave",
			zap.String("employee_id", employeeID),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveConflict
	}

	balances, err := s.Balance(ctx, employeeID, startDate.Year())
	if err != nil {
		return LeaveResponse{}, err
	}
	if entry, ok := balances[req.LeaveType]; ok && totalDays > entry.Remaining {
		s.logger.Warn("insufficient leave balance",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", req.LeaveType),
			zap.Int("requested_days", totalDays),
			zap.Int("remaining", entry.Remaining),
		)
		return LeaveResponse{}, leaveerrors.InsufficientBalance(req.LeaveType)
	}

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: eid,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	event, err := kafka.NewOutboxEvent("leave_request", l.ID.String(), "leave.request.submitted", events.LeaveRequestedTopic, events.LeaveRequestedEvent{
		EventType:  "leave.request.submitted",
		LeaveID:    l.ID.String(),
		EmployeeID: employeeID,
		LeaveType:  l.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     l.Reason,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("stage leave submitted event failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", l.LeaveType),
		zap.Int("total_days", totalDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, leaveID, approverID string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrNotFoundOrProcessed
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("approve on non-pending leave",
			zap.String("leave_id", leaveID),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotFoundOrProcessed
	}

	approver, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	approvedAt := s.now().UTC()
	l.Status = StatusApproved
	l.ApprovedBy = &approver
	l.ApprovedAt = &approvedAt

	event, err := kafka.NewOutboxEvent("leave_request", l.ID.String(), "leave.request.approved", events.LeaveApprovedTopic, events.LeaveApprovedEvent{
		EventType:  "leave.request.approved",
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  l.TotalDays,
		ApprovedBy: approverID,
		OccurredAt: approvedAt,
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, l); err != nil {
		s.logger.Error("approve leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("stage leave approved event failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request approved",
		zap.String("leave_id", leaveID),
		zap.String("approved_by", approverID),
	)
	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, leaveID, approverID string, req RejectLeaveRequest) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrNotFoundOrProcessed
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("reject on non-pending leave",
			zap.String("leave_id", leaveID),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotFoundOrProcessed
	}

	approver, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	rejectedAt := s.now().UTC()
	l.Status = StatusRejected
	l.ApprovedBy = &approver
	l.ApprovedAt = &rejectedAt
	l.RejectionReason = &req.Reason

	event, err := kafka.NewOutboxEvent("leave_request", l.ID.String(), "leave.request.rejected", events.LeaveRejectedTopic, events.LeaveRejectedEvent{
		EventType:  "leave.request.rejected",
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Reason:     req.Reason,
		RejectedBy: approverID,
		OccurredAt: rejectedAt,
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, l); err != nil {
		s.logger.Error("reject leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("stage leave rejected event failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request rejected",
		zap.String("leave_id", leaveID),
		zap.String("rejected_by", approverID),
	)
	return mapToResponse(*l), nil
}

// Cancel removes a pending request outright. Only the owner may cancel, and
// only while the request is still PENDING; processed requests are immutable
// history.
func (s *service) Cancel(ctx context.Context, leaveID, employeeID string) error {
	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}
	if l.EmployeeID.String() != employeeID {
		s.logger.Warn("cancel by non-owner",
			zap.String("leave_id", leaveID),
			zap.String("employee_id", employeeID),
		)
		return leaveerrors.ErrNotOwner
	}
	if l.Status != StatusPending {
		return leaveerrors.ErrCancelNotPending
	}

	if err := s.repo.Delete(ctx, leaveID); err != nil {
		s.logger.Error("cancel leave delete failed", zap.String("leave_id", leaveID), zap.Error(err))
		return err
	}

	s.logger.Info("leave request cancelled", zap.String("leave_id", leaveID))
	return nil
}

// Balance reports allowance, taken and remaining days per leave type for the
// year. Only APPROVED requests lying fully within the year count as taken.
func (s *service) Balance(ctx context.Context, employeeID string, year int) (map[string]BalanceEntry, error) {
	taken, err := s.repo.ApprovedDaysByTypeInYear(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("leave balance query failed", zap.Error(err))
		return nil, err
	}

	balances := make(map[string]BalanceEntry, len(Types))
	for _, t := range Types {
		allowance := s.cfg.Allowances[t]
		balances[t] = BalanceEntry{
			Allowance: allowance,
			Taken:     taken[t],
			Remaining: allowance - taken[t],
		}
	}
	return balances, nil
}

func (s *service) IsEmployeeOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	count, err := s.repo.CountApprovedOnDate(ctx, employeeID, geoutil.DateOnly(date))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *service) TeamCalendar(ctx context.Context, startDate, endDate time.Time) ([]CalendarEntry, error) {
	if startDate.After(endDate) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindApprovedInPeriod(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("team calendar query failed", zap.Error(err))
		return nil, err
	}

	entries := make([]CalendarEntry, len(rows))
	for i, l := range rows {
		entry := CalendarEntry{Leave: mapToResponse(l)}
		if l.Employee != nil {
			entry.Employee = employee.EmployeeResponse{
				ID:           l.Employee.ID.String(),
				EmployeeCode: l.Employee.EmployeeCode,
				Email:        l.Employee.Email,
				FirstName:    l.Employee.FirstName,
				LastName:     l.Employee.LastName,
				FullName:     l.Employee.FirstName + " " + l.Employee.LastName,
			}
		}
		entries[i] = entry
	}
	return entries, nil
}

func (s *service) PendingRequests(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) EmployeeRequests(ctx context.Context, employeeID string, offset, limit int) ([]LeaveResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID, offset, limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}
