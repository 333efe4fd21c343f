// File: services/booking/commit.go
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/models"

	"go.uber.org/zap"
)

// ErrInvalidProposal means Commit was called on an incomplete proposal.
// That is a caller bug (the accept action must only be offered for complete
// proposals), so it is rejected rather than coerced.
var ErrInvalidProposal = errors.New("cannot commit an incomplete proposal")

// ReminderScheduler enqueues a reminder ahead of an appointment.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, apt models.Appointment) error
}

// CommitService materializes accepted proposals into appointment records.
// Commit is deliberately not idempotent: each call inserts one record, and
// the UI must disable the accept action after the first success.
type CommitService struct {
	Appointments appointmentRepo.AppointmentRepository
	Reminders    ReminderScheduler
	Logger       *zap.Logger

	// DefaultServiceName and DefaultServicePrice apply when a proposal
	// names no catalog service.
	DefaultServiceName  string
	DefaultServicePrice float64

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *CommitService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Commit turns a complete, accepted proposal into exactly one appointment.
// Unspecified fields get defaults: today's date, 10:00, the configured
// default service, and a mode-dependent placeholder name. Guest bookings
// start PENDING (the shop still confirms); admin-assisted ones are entered
// by the barber and start CONFIRMED.
func (s *CommitService) Commit(ctx context.Context, p *models.BookingProposal, catalog []models.ServiceItem, mode models.ChatMode) (*models.Appointment, error) {
	if p == nil || !p.IsComplete {
		return nil, ErrInvalidProposal
	}

	now := s.now()
	date := p.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	hhmm := p.Time
	if hhmm == "" {
		hhmm = "10:00"
	}

	serviceName, price := s.resolveService(p.Service, catalog)

	clientID := "web-guest"
	placeholder := "Web Client"
	status := models.StatusPending
	if mode == models.ModeAdminAssist {
		clientID = "whatsapp-import"
		placeholder = "WhatsApp Client"
		status = models.StatusConfirmed
	}
	clientName := p.ClientName
	if clientName == "" {
		clientName = placeholder
	}

	apt := models.Appointment{
		ClientID:        clientID,
		ClientName:      clientName,
		Service:         serviceName,
		StylePreference: p.StylePreference,
		Date:            date,
		Time:            hhmm,
		Price:           price,
		Status:          status,
		CreatedAt:       now,
	}

	id, err := s.Appointments.Create(ctx, apt)
	if err != nil {
		return nil, err
	}
	apt.ID = id

	if s.Reminders != nil {
		// Best effort: a failed reminder must not undo the booking.
		if err := s.Reminders.ScheduleReminder(ctx, apt); err != nil {
			s.Logger.Warn("booking: failed to schedule reminder",
				zap.String("appointment", apt.ID), zap.Error(err))
		}
	}

	s.Logger.Info("booking: committed appointment",
		zap.String("id", apt.ID),
		zap.String("date", apt.Date),
		zap.String("time", apt.Time),
		zap.String("status", string(apt.Status)))
	return &apt, nil
}

// resolveService matches the requested service against the catalog by
// case-insensitive exact name; otherwise the configured default applies.
func (s *CommitService) resolveService(requested string, catalog []models.ServiceItem) (string, float64) {
	name := s.DefaultServiceName
	if name == "" {
		name = "General Cut"
	}
	price := s.DefaultServicePrice
	if price == 0 {
		price = 15
	}

	if requested == "" {
		return name, price
	}
	for _, svc := range catalog {
		if strings.EqualFold(svc.Name, requested) {
			return svc.Name, svc.Price
		}
	}
	return requested, price
}
