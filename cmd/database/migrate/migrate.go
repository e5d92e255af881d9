package migration

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"local-chef-bazaar/entities"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

// indexes lists the indexes the API relies on: one per filter route, the
// meal feed sort and the unique email that backs user registration.
func indexes() []collectionIndex {
	return []collectionIndex{
		{
			collection: entities.UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: entities.FieldEmail, Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		{
			collection: entities.MealsCollection,
			model:      mongo.IndexModel{Keys: bson.D{{Key: entities.FieldUserEmail, Value: 1}}},
		},
		{
			collection: entities.MealsCollection,
			model:      mongo.IndexModel{Keys: bson.D{{Key: entities.FieldDate, Value: 1}}},
		},
		{
			collection: entities.ReviewsCollection,
			model:      mongo.IndexModel{Keys: bson.D{{Key: entities.FieldFoodID, Value: 1}}},
		},
		{
			collection: entities.OrdersCollection,
			model:      mongo.IndexModel{Keys: bson.D{{Key: entities.FieldUserEmail, Value: 1}}},
		},
		{
			collection: entities.OrdersCollection,
			model:      mongo.IndexModel{Keys: bson.D{{Key: entities.FieldChefID, Value: 1}}},
		},
	}
}

// Migrate creates every index. Failures are logged and skipped: an existing
// collection with duplicate emails must not keep the server from starting.
func Migrate(ctx context.Context, db *mongo.Database) error {
	var failed int
	for _, idx := range indexes() {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			failed++
			log.Errorf("Error creating index on %s: %v", idx.collection, err)
			continue
		}
		log.Infof("Index %s ready on %s", name, idx.collection)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d indexes could not be created", failed, len(indexes()))
	}
	log.Info("Database migration complete")
	return nil
}
