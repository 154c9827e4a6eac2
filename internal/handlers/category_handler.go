package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendora-shop/storefront-backend/internal/models"
	"github.com/trendora-shop/storefront-backend/utils"
)

type CategoryHandler struct {
	DB *mongo.Database
}

func NewCategoryHandler(db *mongo.Database) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	if err := validate.Struct(category); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}

	if category.Slug == "" {
		category.Slug = strings.ToLower(strings.ReplaceAll(category.Name, " ", "-"))
	}
	category.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	collection := h.DB.Collection("categories")
	var existing models.Category
	if err := collection.FindOne(ctx, bson.M{"slug": category.Slug}).Decode(&existing); err == nil {
		c.JSON(http.StatusConflict, utils.ErrorResponse("Category already exists"))
		return
	}

	res, err := collection.InsertOne(ctx, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create category"))
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Category created successfully", gin.H{
		"id":           res.InsertedID,
		"categoryName": category.Name,
		"createdAt":    category.CreatedAt,
	}))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	collection := h.DB.Collection("categories")
	opts := options.Find().SetSort(bson.M{"name": 1})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch categories"))
		return
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Categories fetched successfully", gin.H{"categories": categories}))
}
