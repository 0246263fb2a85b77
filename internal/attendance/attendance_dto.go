package attendance

import (
	"time"

	"go-attendance/internal/shared/geoutil"
)

type CheckInRequest struct {
	Latitude   float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude  float64 `json:"longitude" binding:"required,min=-180,max=180"`
	QRCodeData *string `json:"qr_code_data"`
}

type CheckOutRequest struct {
	Latitude   float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude  float64 `json:"longitude" binding:"required,min=-180,max=180"`
	QRCodeData *string `json:"qr_code_data"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
	HoursWorked  float64 `json:"hours_worked"`
	IsLate       bool    `json:"is_late"`
	IsPresent    bool    `json:"is_present"`
	Overtime     float64 `json:"overtime"`
}

// MonthlyStats aggregates one employee's month. AverageHours counts every
// attended day in the denominator; days without checkout contribute zero.
type MonthlyStats struct {
	TotalDays    int     `json:"total_days"`
	EarlyDays    int     `json:"early_days"`
	OnTimeDays   int     `json:"on_time_days"`
	LateDays     int     `json:"late_days"`
	AbsentDays   int     `json:"absent_days"`
	AverageHours float64 `json:"average_hours"`
}

// DailyReportEntry is one employee's line in the daily report; employees with
// no record for the day appear as implicit absences.
type DailyReportEntry struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeCode string             `json:"employee_code"`
	FullName     string             `json:"full_name"`
	Status       string             `json:"status"`
	Attendance   *AttendanceResponse `json:"attendance"`
}

type LateArrivalEntry struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Date         string `json:"date"`
	CheckInTime  string `json:"check_in_time"`
}

// OvertimeReport sums hours beyond the standard day over a period.
type OvertimeReport struct {
	EmployeeID    string  `json:"employee_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func (s *service) mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		Status:     a.Status,
		IsLate:     a.Status == StatusLate,
		IsPresent:  a.Status == StatusEarly || a.Status == StatusOnTime || a.Status == StatusLate,
	}
	if a.CheckInTime != nil {
		v := a.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if a.CheckOutTime != nil {
		v := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	if a.CheckInTime != nil && a.CheckOutTime != nil {
		resp.HoursWorked = geoutil.HoursBetween(*a.CheckInTime, *a.CheckOutTime)
		if resp.HoursWorked > s.cfg.StandardDayHours {
			resp.Overtime = resp.HoursWorked - s.cfg.StandardDayHours
		}
	}
	return resp
}

func (s *service) mapToListResponse(rows []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = s.mapToResponse(a)
	}
	return resp
}
