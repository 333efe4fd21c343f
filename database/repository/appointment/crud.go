// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"barberpro/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment and returns its ID. Appointments are
// append-only: status transitions are the only mutation.
func (r *mongoAppointmentRepo) Create(ctx context.Context, apt models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if apt.ID == "" {
		apt.ID = uuid.New().String()
	}
	if apt.CreatedAt.IsZero() {
		apt.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, apt); err != nil {
		return "", err
	}
	return apt.ID, nil
}

// GetByID returns an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var apt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&apt); err != nil {
		return nil, err
	}
	return &apt, nil
}

// GetAll returns every appointment, most recent date first.
func (r *mongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apts []models.Appointment
	if err := cursor.All(ctx, &apts); err != nil {
		return nil, err
	}
	return apts, nil
}

// UpdateStatus transitions an appointment to the given status. Records are
// never deleted; cancellation goes through here.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
