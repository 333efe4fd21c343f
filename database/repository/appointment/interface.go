// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, apt models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.Collection("appointments"),
	}
}
