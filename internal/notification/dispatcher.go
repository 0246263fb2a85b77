package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go-attendance/internal/employee"
	"go-attendance/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmployeeLookup resolves notification recipients.
type EmployeeLookup interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindSupervisors(ctx context.Context) ([]employee.Employee, error)
}

// Dispatcher turns domain events into in-app notifications and emails. Every
// delivery is best-effort: a failed email is logged and never retried.
type Dispatcher struct {
	repo      Repository
	employees EmployeeLookup
	mailer    Mailer
	logger    *zap.Logger
}

func NewDispatcher(repo Repository, employees EmployeeLookup, mailer Mailer, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &Dispatcher{repo: repo, employees: employees, mailer: mailer, logger: l}
}

func (d *Dispatcher) HandleAttendanceLate(ctx context.Context, msg kafkago.Message) error {
	var event events.AttendanceLateEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode late arrival event: %w", err)
	}

	e, err := d.employees.FindByID(ctx, event.EmployeeID)
	if err != nil {
		return fmt.Errorf("resolve employee %s: %w", event.EmployeeID, err)
	}

	title := "Late arrival recorded"
	message := fmt.Sprintf("Your check-in on %s at %s was recorded as late.",
		event.Date, event.CheckInTime.Format("15:04"))

	d.deliver(ctx, *e, TypeAttendance, title, message, lateArrivalEmail(e.FullName(), event))
	return nil
}

func (d *Dispatcher) HandleLeaveRequested(ctx context.Context, msg kafkago.Message) error {
	var event events.LeaveRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode leave requested event: %w", err)
	}

	requester, err := d.employees.FindByID(ctx, event.EmployeeID)
	if err != nil {
		return fmt.Errorf("resolve employee %s: %w", event.EmployeeID, err)
	}
	supervisors, err := d.employees.FindSupervisors(ctx)
	if err != nil {
		return fmt.Errorf("list supervisors: %w", err)
	}

	title := "New leave request"
	message := fmt.Sprintf("%s requested %s leave from %s to %s.",
		requester.FullName(), event.LeaveType, event.StartDate, event.EndDate)

	for _, sup := range supervisors {
		d.deliver(ctx, sup, TypeLeave, title, message, leaveRequestedEmail(requester.FullName(), event))
	}
	return nil
}

func (d *Dispatcher) HandleLeaveApproved(ctx context.Context, msg kafkago.Message) error {
	var event events.LeaveApprovedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode leave approved event: %w", err)
	}

	e, err := d.employees.FindByID(ctx, event.EmployeeID)
	if err != nil {
		return fmt.Errorf("resolve employee %s: %w", event.EmployeeID, err)
	}

	title := "Leave request approved"
	message := fmt.Sprintf("Your %s leave from %s to %s was approved.",
		event.LeaveType, event.StartDate, event.EndDate)

	d.deliver(ctx, *e, TypeLeave, title, message, leaveApprovedEmail(e.FullName(), event))
	return nil
}

func (d *Dispatcher) HandleLeaveRejected(ctx context.Context, msg kafkago.Message) error {
	var event events.LeaveRejectedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode leave rejected event: %w", err)
	}

	e, err := d.employees.FindByID(ctx, event.EmployeeID)
	if err != nil {
		return fmt.Errorf("resolve employee %s: %w", event.EmployeeID, err)
	}

	title := "Leave request rejected"
	message := fmt.Sprintf("Your %s leave from %s to %s was rejected: %s",
		event.LeaveType, event.StartDate, event.EndDate, event.Reason)

	d.deliver(ctx, *e, TypeLeave, title, message, leaveRejectedEmail(e.FullName(), event))
	return nil
}

// deliver writes the in-app row and sends the email. Either half failing is
// logged and swallowed so the other half still goes out.
func (d *Dispatcher) deliver(ctx context.Context, recipient employee.Employee, notifType, title, message, htmlBody string) {
	n := &Notification{
		ID:         uuid.New(),
		EmployeeID: recipient.ID,
		Type:       notifType,
		Title:      title,
		Message:    message,
	}
	if err := d.repo.Create(ctx, n); err != nil {
		d.logger.Error("create in-app notification failed",
			zap.String("employee_id", recipient.ID.String()),
			zap.String("type", notifType),
			zap.Error(err),
		)
	}

	if d.mailer == nil {
		return
	}
	if err := d.mailer.Send(recipient.Email, title, htmlBody); err != nil {
		d.logger.Error("send notification email failed",
			zap.String("employee_id", recipient.ID.String()),
			zap.String("type", notifType),
			zap.Error(err),
		)
		return
	}
	d.logger.Info("notification delivered",
		zap.String("employee_id", recipient.ID.String()),
		zap.String("type", notifType),
	)
}
