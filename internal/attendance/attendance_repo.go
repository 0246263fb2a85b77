package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// MonthlyStatsRow is the raw aggregate scanned from the stats query.
type MonthlyStatsRow struct {
	TotalDays    int
	EarlyDays    int
	OnTimeDays   int
	LateDays     int
	AbsentDays   int
	AverageHours float64
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time, offset, limit int) ([]Attendance, error)
	FindByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	FindLateBetween(ctx context.Context, startDate, endDate time.Time) ([]Attendance, error)
	MonthlyStats(ctx context.Context, employeeID string, year, month int) (MonthlyStatsRow, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time, offset, limit int) ([]Attendance, error) {
	var rows []Attendance
	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date <= ?", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).
		Order("date DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date = ?", date.Format("2006-01-02")).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindLateBetween(ctx context.Context, startDate, endDate time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", StatusLate).
		Where("date >= ? AND date <= ?", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// MonthlyStats aggregates in SQL. Days without a checkout still sit in the
// average's denominator and contribute zero hours.
func (r *repository) MonthlyStats(ctx context.Context, employeeID string, year, month int) (MonthlyStatsRow, error) {
	query := `
SELECT
	COUNT(*) AS total_days,
	COUNT(*) FILTER (WHERE status = 'EARLY') AS early_days,
	COUNT(*) FILTER (WHERE status = 'ON_TIME') AS on_time_days,
	COUNT(*) FILTER (WHERE status = 'LATE') AS late_days,
	COUNT(*) FILTER (WHERE status = 'ABSENT') AS absent_days,
	COALESCE(ROUND(AVG(
		CASE
			WHEN check_in_time IS NOT NULL AND check_out_time IS NOT NULL
			THEN EXTRACT(EPOCH FROM (check_out_time - check_in_time)) / 3600.0
			ELSE 0
		END
	)::numeric, 2), 0) AS average_hours
FROM attendances
WHERE employee_id = ?
	AND EXTRACT(YEAR FROM date) = ?
	AND EXTRACT(MONTH FROM date) = ?
`
	var row MonthlyStatsRow
	err := r.db.WithContext(ctx).Raw(query, employeeID, year, month).Scan(&row).Error
	return row, err
}
