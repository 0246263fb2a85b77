package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]LeaveRequest, error)
	FindPending(ctx context.Context) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	Delete(ctx context.Context, id string) error
	HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
	ApprovedDaysByTypeInYear(ctx context.Context, employeeID string, year int) (map[string]int, error)
	CountApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (int64, error)
	FindApprovedInPeriod(ctx context.Context, startDate, endDate time.Time) ([]LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPending(ctx context.Context) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// Delete is a hard delete; cancellation leaves no trace.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveRequest{}, "id = ?", id).Error
}

// HasOverlapping checks the closed-interval intersection against the
// employee's PENDING and APPROVED requests.
func (r *repository) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", endDate.Format("2006-01-02"), startDate.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

// ApprovedDaysByTypeInYear sums the durations of APPROVED requests lying
// fully within the calendar year, grouped by leave type.
func (r *repository) ApprovedDaysByTypeInYear(ctx context.Context, employeeID string, year int) (map[string]int, error) {
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	type row struct {
		LeaveType string
		Days      int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("leave_type, COALESCE(SUM(total_days), 0) AS days").
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date >= ? AND end_date <= ?", yearStart.Format("2006-01-02"), yearEnd.Format("2006-01-02")).
		Group("leave_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	taken := make(map[string]int, len(rows))
	for _, r := range rows {
		taken[r.LeaveType] = r.Days
	}
	return taken, nil
}

func (r *repository) CountApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", date.Format("2006-01-02"), date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *repository) FindApprovedInPeriod(ctx context.Context, startDate, endDate time.Time) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", endDate.Format("2006-01-02"), startDate.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
