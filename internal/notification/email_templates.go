package notification

import (
	"fmt"

	"go-attendance/internal/events"
)

func emailShell(heading, body string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #2c3e50;">%s</h2>
  %s
  <p style="color: #999; font-size: 12px;">This is an automated message from the attendance system.</p>
</body>
</html>`, heading, body)
}

func lateArrivalEmail(name string, event events.AttendanceLateEvent) string {
	body := fmt.Sprintf(`<p>Hi %s,</p>
  <p>Your check-in on <strong>%s</strong> at <strong>%s</strong> was recorded as <strong>late</strong>.</p>
  <p>Please reach out to your supervisor if this is unexpected.</p>`,
		name, event.Date, event.CheckInTime.Format("15:04"))
	return emailShell("Late Arrival Recorded", body)
}

func leaveRequestedEmail(requesterName string, event events.LeaveRequestedEvent) string {
	body := fmt.Sprintf(`<p><strong>%s</strong> has submitted a leave request.</p>
  <table cellpadding="4">
    <tr><td>Type</td><td><strong>%s</strong></td></tr>
    <tr><td>From</td><td>%s</td></tr>
    <tr><td>To</td><td>%s</td></tr>
    <tr><td>Reason</td><td>%s</td></tr>
  </table>
  <p>Please review it in the dashboard.</p>`,
		requesterName, event.LeaveType, event.StartDate, event.EndDate, event.Reason)
	return emailShell("New Leave Request", body)
}

func leaveApprovedEmail(name string, event events.LeaveApprovedEvent) string {
	body := fmt.Sprintf(`<p>Hi %s,</p>
  <p>Your <strong>%s</strong> leave from <strong>%s</strong> to <strong>%s</strong> (%d days) has been <strong style="color: #27ae60;">approved</strong>.</p>`,
		name, event.LeaveType, event.StartDate, event.EndDate, event.TotalDays)
	return emailShell("Leave Request Approved", body)
}

func leaveRejectedEmail(name string, event events.LeaveRejectedEvent) string {
	body := fmt.Sprintf(`<p>Hi %s,</p>
  <p>Your <strong>%s</strong> leave from <strong>%s</strong> to <strong>%s</strong> has been <strong style="color: #c0392b;">rejected</strong>.</p>
  <p>Reason: %s</p>`,
		name, event.LeaveType, event.StartDate, event.EndDate, event.Reason)
	return emailShell("Leave Request Rejected", body)
}
