package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/mongo"

	"local-chef-bazaar/cmd/config"
	migration "local-chef-bazaar/cmd/database/migrate"
	"local-chef-bazaar/internal/utils"
	"local-chef-bazaar/pkg/store"
)

func main() {
	utils.LoadConfig()
	ctx := context.Background()

	client, db := connect(ctx)

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("server shutdown: %v", err)
		}
	}()

	port := utils.GetConfig("PORT")
	log.Infof("LocalChefBazaar server listening on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}

	if client != nil {
		disconnectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Errorf("disconnecting from MongoDB: %v", err)
		}
	}
}

// connect never stops startup: without a client every request fails on its
// own with a 500, and an unreachable cluster is only logged.
func connect(ctx context.Context) (*mongo.Client, store.Database) {
	client, err := config.ConnectDB(ctx)
	if err != nil {
		log.Errorf("Database connection failed: %v", err)
		return nil, store.NewUnavailableDatabase(err)
	}
	database := client.Database(store.DatabaseName)

	if err := config.PingDB(ctx, client); err != nil {
		log.Errorf("Database ping failed: %v", err)
		return client, store.NewMongoDatabase(database)
	}
	log.Info("Pinged your deployment. You successfully connected to MongoDB!")

	if err := migration.Migrate(ctx, database); err != nil {
		log.Warnf("Database migration incomplete: %v", err)
	}
	return client, store.NewMongoDatabase(database)
}
