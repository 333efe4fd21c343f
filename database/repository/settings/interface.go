// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*models.ShopSettings, error)
	Upsert(ctx context.Context, settings models.ShopSettings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	return &mongoSettingsRepo{
		coll: database.Collection("settings"),
	}
}
