// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"time"

	"barberpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The shop settings live in a single document keyed by a fixed ID.
const settingsDocID = "shop"

// Get loads the singleton settings document. Returns mongo.ErrNoDocuments
// when the shop has never been configured.
func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.ShopSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		ID       string              `bson:"id"`
		Settings models.ShopSettings `bson:"settings"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc.Settings, nil
}

// Upsert replaces the singleton settings document, creating it if absent.
func (r *mongoSettingsRepo) Upsert(ctx context.Context, settings models.ShopSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"id": settingsDocID, "settings": settings}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": settingsDocID}, update, opts)
	return err
}
