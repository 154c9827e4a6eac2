package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora-shop/storefront-backend/internal/adapters/repository"
	"github.com/trendora-shop/storefront-backend/internal/models"
	"github.com/trendora-shop/storefront-backend/utils"
)

type ProductHandler struct {
	Repo repository.ProductRepository
}

func NewProductHandler(db *mongo.Database) *ProductHandler {
	return &ProductHandler{Repo: repository.NewProductRepository(db)}
}

// CreateProduct accepts a multipart form with product fields, up to four
// images and an optional video. Media is streamed to Cloudinary before the
// product is saved.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	quantity, _ := strconv.Atoi(c.PostForm("quantity"))
	discount, _ := strconv.ParseFloat(c.PostForm("discount"), 64)
	weight, _ := strconv.ParseFloat(c.PostForm("weight"), 64)

	product := models.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Price:       price,
		Quantity:    quantity,
		Discount:    discount,
		Weight:      weight,
		Bestseller:  c.PostForm("bestseller") == "true",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := validate.Struct(product); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Validation failed: "+err.Error()))
		return
	}

	for i := 1; i <= 4; i++ {
		fileHeader, err := c.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			continue
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Failed to read uploaded image"))
			return
		}
		url, err := utils.UploadToCloudinary(file, uuid.NewString())
		file.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to upload image"))
			return
		}
		product.Images = append(product.Images, url)
	}

	if fileHeader, err := c.FormFile("video"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Failed to read uploaded video"))
			return
		}
		url, err := utils.UploadToCloudinary(file, uuid.NewString())
		file.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to upload video"))
			return
		}
		product.VideoURL = url
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	product, err := h.Repo.CreateProduct(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Product added successfully", gin.H{"product": product}))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	products, err := h.Repo.ListProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Products fetched successfully", gin.H{"products": products}))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	product, err := h.Repo.GetProduct(ctx, productID)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Product fetched successfully", gin.H{"product": product}))
}

func (h *ProductHandler) UpdateQuantity(c *gin.Context) {
	var input models.UpdateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}
	if *input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Quantity must not be negative"))
		return
	}

	h.updateField(c, bson.M{"quantity": *input.Quantity}, "Quantity updated successfully")
}

func (h *ProductHandler) UpdateDiscount(c *gin.Context) {
	var input models.UpdateDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}
	if *input.Discount < 0 || *input.Discount > 100 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Discount must be between 0 and 100"))
		return
	}

	h.updateField(c, bson.M{"discount": *input.Discount}, "Discount updated successfully")
}

func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	var input models.UpdatePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}
	if *input.Price <= 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Price must be greater than zero"))
		return
	}

	h.updateField(c, bson.M{"price": *input.Price}, "Price updated successfully")
}

func (h *ProductHandler) UpdateBestseller(c *gin.Context) {
	var input models.UpdateBestsellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	h.updateField(c, bson.M{"bestseller": *input.Bestseller}, "Bestseller status updated successfully")
}

// updateField applies a validated single-field update to the product in
// the route parameter.
func (h *ProductHandler) updateField(c *gin.Context, fields bson.M, message string) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	matched, err := h.Repo.UpdateProductFields(ctx, productID, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update product"))
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse(message, nil))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Repo.DeleteProduct(ctx, productID); err != nil {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Product deleted successfully", nil))
}

// DescribeProduct generates a storefront description for the admin "Add
// Product" form.
func (h *ProductHandler) DescribeProduct(c *gin.Context) {
	var input models.DescribeProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	description, err := utils.GenerateProductDescription(c.Request.Context(), input.Name, input.Category, input.Keywords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to generate description"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Description generated", gin.H{"description": description}))
}
