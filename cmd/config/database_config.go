package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"PlateShare-Backend/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectDB dials MongoDB once at startup; the returned database handle
// is shared by every repository, with pooling left to the driver.
func ConnectDB() (*mongo.Database, error) {
	uri := utils.GetConfig("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.6nbocxd.mongodb.net/?appName=Cluster0",
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASS"),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Database ping failed: %v", err)
		return nil, err
	}

	dbName := utils.GetConfig("DB_NAME")
	if dbName == "" {
		dbName = "plateShare_db"
	}
	return client.Database(dbName), nil
}
