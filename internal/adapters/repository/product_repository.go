package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID primitive.ObjectID) (models.Product, error)
	UpdateProductFields(ctx context.Context, productID primitive.ObjectID, fields bson.M) (bool, error)
	DeleteProduct(ctx context.Context, productID primitive.ObjectID) error
}

type MongoProductRepository struct {
	DB *mongo.Database
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepository{DB: db}
}

func (r *MongoProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	collection := r.DB.Collection("products")
	res, err := collection.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (r *MongoProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	collection := r.DB.Collection("products")
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) GetProduct(ctx context.Context, productID primitive.ObjectID) (models.Product, error) {
	collection := r.DB.Collection("products")
	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// UpdateProductFields applies a single $set with the given fields. Each
// admin save updates one field, so retries with the same value leave the
// stored document unchanged.
func (r *MongoProductRepository) UpdateProductFields(ctx context.Context, productID primitive.ObjectID, fields bson.M) (bool, error) {
	collection := r.DB.Collection("products")

	fields["updatedAt"] = time.Now()
	result, err := collection.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoProductRepository) DeleteProduct(ctx context.Context, productID primitive.ObjectID) error {
	collection := r.DB.Collection("products")
	res, err := collection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
