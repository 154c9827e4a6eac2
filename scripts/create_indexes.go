package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Run this script once to create database indexes
// Usage: go run scripts/create_indexes.go
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "trendora"
	}
	clientOptions := options.Client().ApplyURI(mongoURI).SetServerSelectionTimeout(30 * time.Second)

	log.Println("Connecting to MongoDB...")
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	db := client.Database(dbName)

	createIndex(ctx, db.Collection("users"), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("idx_email").SetUnique(true),
	})

	createIndex(ctx, db.Collection("products"), mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("idx_category"),
	})
	createIndex(ctx, db.Collection("products"), mongo.IndexModel{
		Keys:    bson.D{{Key: "bestseller", Value: 1}},
		Options: options.Index().SetName("idx_bestseller"),
	})
	createIndex(ctx, db.Collection("products"), mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_products_date"),
	})

	createIndex(ctx, db.Collection("categories"), mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("idx_slug").SetUnique(true),
	})

	createIndex(ctx, db.Collection("orders"), mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("idx_userId"),
	})
	createIndex(ctx, db.Collection("orders"), mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_status"),
	})
	createIndex(ctx, db.Collection("orders"), mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_orders_date"),
	})

	log.Println("Done")
}

func createIndex(ctx context.Context, coll *mongo.Collection, model mongo.IndexModel) {
	name := *model.Options.Name
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Printf("Failed to create index %s on %s: %v", name, coll.Name(), err)
		return
	}
	log.Printf("Created index %s on %s", name, coll.Name())
}
