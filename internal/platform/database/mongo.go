package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

const (
	UsersCollection     = "users"
	ExercisesCollection = "exercises"
)

// Connect opens and pings a MongoDB client. Callers own the returned handle
// and must Disconnect it on shutdown.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database.Connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("database.Connect ping: %w", err)
	}
	return client, nil
}

func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from database: %v", err)
		return
	}
	fmt.Println("Database connection closed.")
}

func Users(client *mongo.Client, db string) *mongo.Collection {
	return client.Database(db).Collection(UsersCollection)
}

func Exercises(client *mongo.Client, db string) *mongo.Collection {
	return client.Database(db).Collection(ExercisesCollection)
}

// EnsureIndexes creates the unique username index. Duplicate usernames are
// then rejected by the store even when two create-user requests race past the
// application-level lookup.
func EnsureIndexes(ctx context.Context, users *mongo.Collection) error {
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("database.EnsureIndexes: %w", err)
	}
	return nil
}
