// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceCatalogRepository interface {
	Create(ctx context.Context, svc models.ServiceItem) (string, error)
	GetAll(ctx context.Context) ([]models.ServiceItem, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a new ServiceCatalogRepository instance using MongoDB.
func NewMongoCatalogRepo() ServiceCatalogRepository {
	return &mongoCatalogRepo{
		coll: database.Collection("services"),
	}
}
