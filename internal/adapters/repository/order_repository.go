package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

type OrderRepository interface {
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error)
	GetOrderById(ctx context.Context, orderID primitive.ObjectID) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus) error
	ImportOrders(ctx context.Context, orders []models.Order) (int, error)
	MarkOrderPaid(ctx context.Context, orderID primitive.ObjectID) error
}

type MongoOrderRepository struct {
	DB *mongo.Database
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoOrderRepository{DB: db}
}

func (r *MongoOrderRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	collection := r.DB.Collection("orders")
	opts := options.Find().SetSort(bson.M{"date": -1})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoOrderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	collection := r.DB.Collection("orders")
	cursor, err := collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoOrderRepository) GetOrderById(ctx context.Context, orderID primitive.ObjectID) (models.Order, error) {
	collection := r.DB.Collection("orders")
	var order models.Order
	err := collection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	return order, err
}

// UpdateOrderStatus sets the status in a single $set, so re-submitting the
// same status for the same order is a no-op on the stored document.
func (r *MongoOrderRepository) UpdateOrderStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus) error {
	collection := r.DB.Collection("orders")

	res, err := collection.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ImportOrders persists a batch of imported orders in one insert and
// returns how many were written.
func (r *MongoOrderRepository) ImportOrders(ctx context.Context, orders []models.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(orders))
	now := time.Now()
	for _, order := range orders {
		order.ID = primitive.NewObjectID()
		order.CreatedAt = now
		order.UpdatedAt = now
		docs = append(docs, order)
	}

	collection := r.DB.Collection("orders")
	res, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (r *MongoOrderRepository) MarkOrderPaid(ctx context.Context, orderID primitive.ObjectID) error {
	collection := r.DB.Collection("orders")
	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"payment":   true,
			"updatedAt": time.Now(),
		}})
	return err
}
