package assistant

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"barberpro/models"
	"barberpro/services/schedule"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeSettingsRepo struct {
	settings *models.ShopSettings
	getErr   error

	upserted  []models.ShopSettings
	upsertErr error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*models.ShopSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, settings models.ShopSettings) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, settings)
	return nil
}

type fakeCatalogRepo struct {
	items []models.ServiceItem
}

func (f *fakeCatalogRepo) Create(ctx context.Context, svc models.ServiceItem) (string, error) {
	f.items = append(f.items, svc)
	return svc.ID, nil
}

func (f *fakeCatalogRepo) GetAll(ctx context.Context) ([]models.ServiceItem, error) {
	return f.items, nil
}

func (f *fakeCatalogRepo) DeleteByID(ctx context.Context, id string) error { return nil }

type fakeAppointmentSource struct {
	apts []models.Appointment
}

func (f *fakeAppointmentSource) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return f.apts, nil
}

func newTestSnapshotSource(settings *fakeSettingsRepo) *StoreSnapshotSource {
	return &StoreSnapshotSource{
		Settings:     settings,
		Catalog:      &fakeCatalogRepo{},
		Appointments: &fakeAppointmentSource{},
		Logger:       zap.NewNop(),
	}
}

func TestSnapshot_RepairsCorruptSchedule(t *testing.T) {
	ws := schedule.DefaultWeeklySchedule()
	delete(ws, "wednesday")
	settings := &fakeSettingsRepo{settings: &models.ShopSettings{ShopName: "Test Shop", Schedule: ws}}
	src := newTestSnapshotSource(settings)

	snap, err := src.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(snap.Schedule, schedule.DefaultWeeklySchedule()) {
		t.Fatalf("corrupt schedule should load as the built-in default, got %+v", snap.Schedule)
	}
	if len(settings.upserted) != 1 {
		t.Fatalf("repair must be persisted, got %d upserts", len(settings.upserted))
	}
	repaired := settings.upserted[0]
	if repaired.ShopName != "Test Shop" {
		t.Fatalf("repair must keep the rest of the settings: %+v", repaired)
	}
	if err := schedule.Validate(repaired.Schedule); err != nil {
		t.Fatalf("persisted schedule must validate: %v", err)
	}
}

func TestSnapshot_FirstBootSeedsDefaults(t *testing.T) {
	settings := &fakeSettingsRepo{getErr: mongo.ErrNoDocuments}
	src := newTestSnapshotSource(settings)

	snap, err := src.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(snap.Schedule, schedule.DefaultWeeklySchedule()) {
		t.Fatalf("unconfigured shop should load the default schedule, got %+v", snap.Schedule)
	}
	if len(settings.upserted) != 1 {
		t.Fatalf("seeded settings must be persisted, got %d upserts", len(settings.upserted))
	}
}

func TestSnapshot_ValidSchedulePassesThrough(t *testing.T) {
	ws := schedule.DefaultWeeklySchedule()
	ws["sunday"] = models.DaySchedule{
		IsOpen: true,
		Ranges: []models.TimeRange{{Start: "11:00", End: "14:00"}},
	}
	settings := &fakeSettingsRepo{settings: &models.ShopSettings{ShopName: "Test Shop", Schedule: ws}}
	src := newTestSnapshotSource(settings)

	snap, err := src.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(snap.Schedule, ws) {
		t.Fatalf("valid schedule must load untouched, got %+v", snap.Schedule)
	}
	if len(settings.upserted) != 0 {
		t.Fatalf("valid schedule must not trigger a repair write")
	}
}

func TestSnapshot_RepairPersistFailureStillUsable(t *testing.T) {
	ws := schedule.DefaultWeeklySchedule()
	delete(ws, "friday")
	settings := &fakeSettingsRepo{
		settings:  &models.ShopSettings{Schedule: ws},
		upsertErr: errors.New("write concern error"),
	}
	src := newTestSnapshotSource(settings)

	snap, err := src.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("a failed repair write must not fail the snapshot: %v", err)
	}
	if err := schedule.Validate(snap.Schedule); err != nil {
		t.Fatalf("snapshot must still carry the repaired schedule: %v", err)
	}
}
