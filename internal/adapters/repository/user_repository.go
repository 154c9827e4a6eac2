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

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserById(ctx context.Context, userID primitive.ObjectID) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role string) (bool, error)
}

type MongoUserRepository struct {
	DB *mongo.Database
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{DB: db}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	collection := r.DB.Collection("users")
	res, err := collection.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	collection := r.DB.Collection("users")
	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *MongoUserRepository) GetUserById(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	collection := r.DB.Collection("users")
	var user models.User
	err := collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	return user, err
}

func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	collection := r.DB.Collection("users")
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetProjection(bson.M{"password": 0})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role string) (bool, error) {
	collection := r.DB.Collection("users")

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"role":      role,
			"updatedAt": time.Now(),
		}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
