// File: database/repository/client/crud.go
package clientRepo

import (
	"context"
	"time"

	"barberpro/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new client and returns its ID.
func (r *mongoClientRepo) Create(ctx context.Context, client models.Client) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return "", err
	}
	return client.ID, nil
}

// GetByID returns a client by its ID.
func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAll returns every client, alphabetically.
func (r *mongoClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// RecordVisit bumps the visit counter and last-visit date for a client.
func (r *mongoClientRepo) RecordVisit(ctx context.Context, id, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"last_visit": date},
		"$inc": bson.M{"total_visits": 1},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
