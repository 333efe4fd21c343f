// File: services/booking/reminder.go
package booking

import (
	"context"
	"encoding/json"
	"time"

	"barberpro/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how far ahead of the slot the reminder fires.
const reminderLead = time.Hour

// AsynqReminderScheduler enqueues reminder tasks on the shared Redis-backed
// queue; cron's worker consumes them.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleReminder enqueues a reminder one hour before the appointment.
// Slots closer than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, apt models.Appointment) error {
	starts := apt.StartsAt(time.Local)
	fireAt := starts.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: apt.ID,
		ClientName:    apt.ClientName,
		Service:       apt.Service,
		Date:          apt.Date,
		Time:          apt.Time,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, b)
	_, err = s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}
