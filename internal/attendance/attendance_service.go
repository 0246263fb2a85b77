package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/geoutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory lists the employees the sweep and reports iterate over.
type EmployeeDirectory interface {
	FindActive(ctx context.Context) ([]employee.Employee, error)
}

// LeaveChecker tells the absence sweep who is on approved leave.
type LeaveChecker interface {
	IsEmployeeOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
}

// QRValidator verifies an optional QR payload at check-in/check-out.
type QRValidator interface {
	Validate(ctx context.Context, code string) (bool, error)
}

type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	Today(ctx context.Context, employeeID string) (*AttendanceResponse, error)
	History(ctx context.Context, employeeID string, startDate, endDate time.Time, offset, limit int) ([]AttendanceResponse, error)
	MonthlyStats(ctx context.Context, employeeID string, year, month int) (MonthlyStats, error)
	DailyReport(ctx context.Context, date time.Time) ([]DailyReportEntry, error)
	LateArrivals(ctx context.Context, startDate, endDate time.Time) ([]LateArrivalEntry, error)
	Overtime(ctx context.Context, employeeID string, startDate, endDate time.Time) (OvertimeReport, error)
	MarkAbsentEmployees(ctx context.Context, date time.Time) (int, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	directory EmployeeDirectory
	leaves    LeaveChecker
	qr        QRValidator
	cfg       config.Office
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, directory EmployeeDirectory, leaves LeaveChecker, qr QRValidator, cfg config.Office, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, outbox, directory, leaves, qr, cfg, time.Now, logger...)
}

// NewServiceWithClock injects the clock; tests pin it to exercise the
// classification boundaries.
func NewServiceWithClock(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, directory EmployeeDirectory, leaves LeaveChecker, qr QRValidator, cfg config.Office, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outbox,
		directory: directory,
		leaves:    leaves,
		qr:        qr,
		cfg:       cfg,
		now:       now,
		logger:    l,
	}
}

// classify maps a check-in wall-clock time onto the work-start policy. The
// grace boundary is inclusive: arriving exactly at start+grace is ON_TIME.
func (s *service) classify(checkIn time.Time) string {
	startHour, startMinute, _ := config.ParseWorkStart(s.cfg.WorkStart)
	startSecs := startHour*3600 + startMinute*60
	graceEnd := startSecs + s.cfg.GraceMinutes*60

	secs := geoutil.SecondsOfDay(checkIn)
	switch {
	case secs < startSecs:
		return StatusEarly
	case secs <= graceEnd:
		return StatusOnTime
	default:
		return StatusLate
	}
}

func (s *service) verifyLocation(employeeID string, lat, lon float64) error {
	distance := geoutil.DistanceMeters(lat, lon, s.cfg.Latitude, s.cfg.Longitude)
	if distance > s.cfg.MaxDistanceMeters {
		s.logger.Warn("geofence violation",
			zap.String("employee_id", employeeID),
			zap.Float64("distance_meters", distance),
		)
		return attendanceerrors.TooFarFromOffice(distance, s.cfg.MaxDistanceMeters)
	}
	return nil
}

func (s *service) verifyQR(ctx context.Context, employeeID string, qrData *string) error {
	if qrData == nil || *qrData == "" {
		return nil
	}
	valid, err := s.qr.Validate(ctx, *qrData)
	if err != nil {
		s.logger.Error("qr validation failed", zap.Error(err))
		return err
	}
	if !valid {
		s.logger.Warn("invalid qr code at check-in",
			zap.String("employee_id", employeeID),
		)
		return attendanceerrors.ErrInvalidQRCode
	}
	return nil
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	now := s.now().UTC()
	today := geoutil.DateOnly(now)

	s.logger.Debug("check-in attempt",
		zap.String("employee_id", employeeID),
		zap.Time("at", now),
	)

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if found && existing.CheckInTime != nil {
		s.logger.Warn("duplicate check-in", zap.String("employee_id", employeeID))
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	if err := s.verifyLocation(employeeID, req.Latitude, req.Longitude); err != nil {
		return AttendanceResponse{}, err
	}
	if err := s.verifyQR(ctx, employeeID, req.QRCodeData); err != nil {
		return AttendanceResponse{}, err
	}

	status := s.classify(now)

	var record *Attendance
	if found {
		// Placeholder row from the sweep or leave marker: fill it in.
		record = existing
	} else {
		record = &Attendance{
			ID:         uuid.New(),
			EmployeeID: eid,
			Date:       today,
		}
	}
	record.CheckInTime = &now
	record.Status = status
	record.Latitude = &req.Latitude
	record.Longitude = &req.Longitude
	record.QRCodeData = req.QRCodeData

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	if found {
		err = repo.Update(ctx, record)
	} else {
		err = repo.Create(ctx, record)
	}
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race against a concurrent check-in.
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		s.logger.Error("check-in persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if status == StatusLate {
		event, err := kafka.NewOutboxEvent("attendance", record.ID.String(), "attendance.late.recorded", events.AttendanceLateTopic, events.AttendanceLateEvent{
			EventType:    "attendance.late.recorded",
			AttendanceID: record.ID.String(),
			EmployeeID:   employeeID,
			Date:         today.Format("2006-01-02"),
			CheckInTime:  now,
			OccurredAt:   now,
		})
		if err != nil {
			return AttendanceResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("stage late arrival event failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("attendance_id", record.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return s.mapToResponse(*record), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	now := s.now().UTC()
	today := geoutil.DateOnly(now)

	record, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
		}
		return AttendanceResponse{}, err
	}
	if record.CheckInTime == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
	}
	if record.CheckOutTime != nil {
		s.logger.Warn("duplicate check-out", zap.String("employee_id", employeeID))
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	if err := s.verifyLocation(employeeID, req.Latitude, req.Longitude); err != nil {
		return AttendanceResponse{}, err
	}
	if err := s.verifyQR(ctx, employeeID, req.QRCodeData); err != nil {
		return AttendanceResponse{}, err
	}

	// Checkout never reclassifies the day; status is fixed at check-in.
	record.CheckOutTime = &now

	if err := s.repo.Update(ctx, record); err != nil {
		s.logger.Error("check-out persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-out recorded",
		zap.String("attendance_id", record.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return s.mapToResponse(*record), nil
}

// Today returns nil without error when the employee has no record yet.
func (s *service) Today(ctx context.Context, employeeID string) (*AttendanceResponse, error) {
	record, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, geoutil.DateOnly(s.now().UTC()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := s.mapToResponse(*record)
	return &resp, nil
}

func (s *service) History(ctx context.Context, employeeID string, startDate, endDate time.Time, offset, limit int) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID, startDate, endDate, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(rows), nil
}

func (s *service) MonthlyStats(ctx context.Context, employeeID string, year, month int) (MonthlyStats, error) {
	if month < 1 || month > 12 {
		return MonthlyStats{}, attendanceerrors.ErrInvalidMonth
	}
	row, err := s.repo.MonthlyStats(ctx, employeeID, year, month)
	if err != nil {
		s.logger.Error("monthly stats query failed", zap.Error(err))
		return MonthlyStats{}, err
	}
	return MonthlyStats{
		TotalDays:    row.TotalDays,
		EarlyDays:    row.EarlyDays,
		OnTimeDays:   row.OnTimeDays,
		LateDays:     row.LateDays,
		AbsentDays:   row.AbsentDays,
		AverageHours: row.AverageHours,
	}, nil
}

// DailyReport lists every active employee for the date; those without a
// record appear as implicit absences.
func (s *service) DailyReport(ctx context.Context, date time.Time) ([]DailyReportEntry, error) {
	records, err := s.repo.FindByDate(ctx, geoutil.DateOnly(date))
	if err != nil {
		return nil, err
	}
	actives, err := s.directory.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]Attendance, len(records))
	for _, a := range records {
		byEmployee[a.EmployeeID.String()] = a
	}

	entries := make([]DailyReportEntry, 0, len(actives))
	for _, e := range actives {
		entry := DailyReportEntry{
			EmployeeID:   e.ID.String(),
			EmployeeCode: e.EmployeeCode,
			FullName:     e.FullName(),
			Status:       StatusAbsent,
		}
		if a, ok := byEmployee[e.ID.String()]; ok {
			resp := s.mapToResponse(a)
			entry.Status = a.Status
			entry.Attendance = &resp
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *service) LateArrivals(ctx context.Context, startDate, endDate time.Time) ([]LateArrivalEntry, error) {
	rows, err := s.repo.FindLateBetween(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries := make([]LateArrivalEntry, len(rows))
	for i, a := range rows {
		entry := LateArrivalEntry{
			EmployeeID: a.EmployeeID.String(),
			Date:       a.Date.Format("2006-01-02"),
		}
		if a.CheckInTime != nil {
			entry.CheckInTime = a.CheckInTime.Format(time.RFC3339)
		}
		if a.Employee != nil {
			entry.EmployeeCode = a.Employee.EmployeeCode
			entry.FullName = a.Employee.FirstName + " " + a.Employee.LastName
		}
		entries[i] = entry
	}
	return entries, nil
}

func (s *service) Overtime(ctx context.Context, employeeID string, startDate, endDate time.Time) (OvertimeReport, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID, startDate, endDate, 0, 0)
	if err != nil {
		return OvertimeReport{}, err
	}

	var total float64
	for _, a := range rows {
		if a.CheckInTime == nil || a.CheckOutTime == nil {
			continue
		}
		worked := geoutil.HoursBetween(*a.CheckInTime, *a.CheckOutTime)
		if worked > s.cfg.StandardDayHours {
			total += worked - s.cfg.StandardDayHours
		}
	}

	return OvertimeReport{
		EmployeeID:    employeeID,
		StartDate:     startDate.Format("2006-01-02"),
		EndDate:       endDate.Format("2006-01-02"),
		OvertimeHours: total,
	}, nil
}

// MarkAbsentEmployees writes an ABSENT row for every active employee with no
// record and no approved leave for the date. Re-running it is a no-op for
// anyone already covered.
func (s *service) MarkAbsentEmployees(ctx context.Context, date time.Time) (int, error) {
	day := geoutil.DateOnly(date)
	actives, err := s.directory.FindActive(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, e := range actives {
		employeeID := e.ID.String()

		_, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return marked, err
		}

		onLeave, err := s.leaves.IsEmployeeOnLeave(ctx, employeeID, day)
		if err != nil {
			return marked, err
		}
		if onLeave {
			continue
		}

		record := &Attendance{
			ID:         uuid.New(),
			EmployeeID: e.ID,
			Date:       day,
			Status:     StatusAbsent,
		}
		if err := s.repo.Create(ctx, record); err != nil {
			if isUniqueViolation(err) {
				// A concurrent sweep or late check-in got there first.
				continue
			}
			return marked, err
		}
		marked++
	}

	s.logger.Info("absence sweep finished",
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("marked", marked),
	)
	return marked, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
