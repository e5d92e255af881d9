package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"local-chef-bazaar/internal/utils"
)

const pingTimeout = 10 * time.Second

// ConnectDB creates the process wide client using the Stable API. The driver
// dials lazily, so a nil error does not mean the cluster is reachable; use
// PingDB for that.
func ConnectDB(ctx context.Context) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(utils.GetMongoURI()).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}
	return client, nil
}

func PingDB(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	return errors.Wrap(err, "pinging MongoDB")
}
