// File: services/assistant/snapshot.go
package assistant

import (
	"context"
	"errors"

	catalogRepo "barberpro/database/repository/catalog"
	settingsRepo "barberpro/database/repository/settings"
	"barberpro/models"
	"barberpro/services/schedule"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentSource is the subset of the appointment repository the
// snapshot needs.
type AppointmentSource interface {
	GetAll(ctx context.Context) ([]models.Appointment, error)
}

// SnapshotSource produces the read-only shop view for one resolver call.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// StoreSnapshotSource assembles snapshots from the storage collaborator.
// A corrupt or missing weekly schedule is silently repaired to the built-in
// default, and the repair is persisted so the next read is clean.
type StoreSnapshotSource struct {
	Settings     settingsRepo.SettingsRepository
	Catalog      catalogRepo.ServiceCatalogRepository
	Appointments AppointmentSource
	Logger       *zap.Logger
}

func (s *StoreSnapshotSource) Snapshot(ctx context.Context) (Snapshot, error) {
	ws, err := s.loadSchedule(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	services, err := s.Catalog.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	appointments, err := s.Appointments.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Schedule: ws, Services: services, Appointments: appointments}, nil
}

func (s *StoreSnapshotSource) loadSchedule(ctx context.Context) (models.WeeklySchedule, error) {
	settings, err := s.Settings.Get(ctx)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		settings = &models.ShopSettings{ShopName: "BarberPro Shop"}
	case err != nil:
		return nil, err
	}

	if err := schedule.Validate(settings.Schedule); err != nil {
		s.Logger.Warn("assistant: repairing corrupt weekly schedule", zap.Error(err))
		settings.Schedule = schedule.DefaultWeeklySchedule()
		if err := s.Settings.Upsert(ctx, *settings); err != nil {
			// The repaired copy is still usable this turn.
			s.Logger.Error("assistant: failed to persist schedule repair", zap.Error(err))
		}
	}
	return settings.Schedule, nil
}
