package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"barberpro/models"

	"go.uber.org/zap"
)

// fakeAppointmentRepo records created appointments in memory.
type fakeAppointmentRepo struct {
	created []models.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, apt models.Appointment) (string, error) {
	apt.ID = fmt.Sprintf("apt-%d", len(f.created)+1)
	f.created = append(f.created, apt)
	return apt.ID, nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, a := range f.created {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return f.created, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

type fakeReminders struct {
	scheduled []models.Appointment
	err       error
}

func (f *fakeReminders) ScheduleReminder(ctx context.Context, apt models.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, apt)
	return nil
}

func newTestCommitService(repo *fakeAppointmentRepo, reminders ReminderScheduler) *CommitService {
	return &CommitService{
		Appointments:        repo,
		Reminders:           reminders,
		Logger:              zap.NewNop(),
		DefaultServiceName:  "General Cut",
		DefaultServicePrice: 15,
		Now:                 func() time.Time { return time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC) },
	}
}

func completeProposal() *models.BookingProposal {
	return &models.BookingProposal{
		ClientName: "Alice",
		Date:       "2026-09-07",
		Time:       "10:00",
		IsComplete: true,
		Reply:      "Monday 10:00, confirm?",
	}
}

func TestCommit_RejectsIncompleteProposal(t *testing.T) {
	s := newTestCommitService(&fakeAppointmentRepo{}, nil)

	for _, p := range []*models.BookingProposal{nil, {Reply: "still chatting", IsComplete: false}} {
		_, err := s.Commit(context.Background(), p, nil, models.ModeGuest)
		if !errors.Is(err, ErrInvalidProposal) {
			t.Fatalf("expected ErrInvalidProposal, got %v", err)
		}
	}
}

func TestCommit_GuestDefaults(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	s := newTestCommitService(repo, nil)

	p := &models.BookingProposal{IsComplete: true, Reply: "ok"}
	apt, err := s.Commit(context.Background(), p, nil, models.ModeGuest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apt.Date != "2026-09-07" {
		t.Fatalf("missing date should default to today, got %q", apt.Date)
	}
	if apt.Time != "10:00" {
		t.Fatalf("missing time should default to 10:00, got %q", apt.Time)
	}
	if apt.ClientName != "Web Client" || apt.ClientID != "web-guest" {
		t.Fatalf("guest placeholder wrong: %+v", apt)
	}
	if apt.Service != "General Cut" || apt.Price != 15 {
		t.Fatalf("default service wrong: %+v", apt)
	}
	if apt.Status != models.StatusPending {
		t.Fatalf("guest bookings start PENDING, got %s", apt.Status)
	}
}

func TestCommit_AdminAssistDefaults(t *testing.T) {
	s := newTestCommitService(&fakeAppointmentRepo{}, nil)

	apt, err := s.Commit(context.Background(), completeProposal(), nil, models.ModeAdminAssist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apt.Status != models.StatusConfirmed {
		t.Fatalf("admin-assisted bookings start CONFIRMED, got %s", apt.Status)
	}
	if apt.ClientName != "Alice" {
		t.Fatalf("explicit name must win over placeholder, got %q", apt.ClientName)
	}
	if apt.ClientID != "whatsapp-import" {
		t.Fatalf("unexpected client id %q", apt.ClientID)
	}
}

func TestCommit_ServiceCatalogMatch(t *testing.T) {
	s := newTestCommitService(&fakeAppointmentRepo{}, nil)
	catalog := []models.ServiceItem{
		{Name: "Classic Cut", Price: 15, DurationMinutes: 30},
		{Name: "Cut + Beard", Price: 25, DurationMinutes: 50},
	}

	p := completeProposal()
	p.Service = "cut + beard" // case-insensitive exact match
	apt, err := s.Commit(context.Background(), p, catalog, models.ModeGuest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apt.Service != "Cut + Beard" || apt.Price != 25 {
		t.Fatalf("catalog match failed: %+v", apt)
	}

	p2 := completeProposal()
	p2.Service = "Mystery Treatment"
	apt2, _ := s.Commit(context.Background(), p2, catalog, models.ModeGuest)
	if apt2.Service != "Mystery Treatment" || apt2.Price != 15 {
		t.Fatalf("unmatched service keeps its name at the default price: %+v", apt2)
	}
}

func TestCommit_InjectedDefaultsUsed(t *testing.T) {
	s := newTestCommitService(&fakeAppointmentRepo{}, nil)
	s.DefaultServiceName = "Signature Fade"
	s.DefaultServicePrice = 22

	p := completeProposal()
	p.Service = ""
	apt, err := s.Commit(context.Background(), p, nil, models.ModeGuest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apt.Service != "Signature Fade" || apt.Price != 22 {
		t.Fatalf("injected defaults not applied: %+v", apt)
	}
}

// Commit is intentionally not idempotent: the caller guards against
// double-submit, not this service.
func TestCommit_NotIdempotent(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	s := newTestCommitService(repo, nil)
	p := completeProposal()

	a1, err1 := s.Commit(context.Background(), p, nil, models.ModeGuest)
	a2, err2 := s.Commit(context.Background(), p, nil, models.ModeGuest)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if a1.ID == a2.ID || len(repo.created) != 2 {
		t.Fatalf("two commits must create two distinct records: %q %q (%d created)", a1.ID, a2.ID, len(repo.created))
	}
}

func TestCommit_ReminderScheduled(t *testing.T) {
	reminders := &fakeReminders{}
	s := newTestCommitService(&fakeAppointmentRepo{}, reminders)

	if _, err := s.Commit(context.Background(), completeProposal(), nil, models.ModeGuest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders.scheduled) != 1 {
		t.Fatalf("expected 1 scheduled reminder, got %d", len(reminders.scheduled))
	}
}

func TestCommit_ReminderFailureDoesNotUndoBooking(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	s := newTestCommitService(repo, &fakeReminders{err: errors.New("queue down")})

	apt, err := s.Commit(context.Background(), completeProposal(), nil, models.ModeGuest)
	if err != nil {
		t.Fatalf("reminder failure must not fail the commit: %v", err)
	}
	if apt == nil || len(repo.created) != 1 {
		t.Fatalf("appointment should still be created")
	}
}
