package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora-shop/storefront-backend/internal/adapters/repository"
	"github.com/trendora-shop/storefront-backend/internal/models"
	"github.com/trendora-shop/storefront-backend/internal/tabular"
	"github.com/trendora-shop/storefront-backend/utils"
)

type OrderHandler struct {
	Repo repository.OrderRepository
}

func NewOrderHandler(db *mongo.Database) *OrderHandler {
	return &OrderHandler{Repo: repository.NewOrderRepository(db)}
}

// GetAllOrders returns every order for the admin order screen. The screen
// re-fetches this list after every mutation; the response is always the
// full, authoritative set.
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Repo.GetAllOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Orders fetched successfully", gin.H{"orders": orders}))
}

// GetUserOrders returns the order history for the authenticated buyer.
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userIdStr, _ := c.Get("userId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Repo.GetOrdersByUserID(ctx, userIdStr.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Orders fetched successfully", gin.H{"orders": orders}))
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid order ID"))
		return
	}

	var input models.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid status provided"))
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Unknown order status"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Repo.UpdateOrderStatus(ctx, orderID, input.Status); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update status"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Order status updated successfully", nil))
}

// ImportOrders bulk-imports orders posted as JSON rows. Each row gets the
// same defensive defaults as the workbook import; a malformed row is
// defaulted, never rejected.
func (h *OrderHandler) ImportOrders(c *gin.Context) {
	var input models.ImportOrdersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	orders := make([]models.Order, 0, len(input.Orders))
	for _, row := range input.Orders {
		orders = append(orders, orderFromImport(row))
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	count, err := h.Repo.ImportOrders(ctx, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to import orders"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Orders imported successfully", gin.H{"imported": count}))
}

// ImportOrdersWorkbook bulk-imports orders from an uploaded Excel workbook.
func (h *OrderHandler) ImportOrdersWorkbook(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Workbook file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Failed to read workbook"))
		return
	}
	defer file.Close()

	orders, err := tabular.ReadWorkbook(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Failed to parse workbook"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	count, err := h.Repo.ImportOrders(ctx, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to import orders"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Orders imported successfully", gin.H{"imported": count}))
}

// orderFromImport applies the adapter's defensive defaults to a JSON
// import row.
func orderFromImport(row models.ImportedOrder) models.Order {
	order := models.Order{
		UserID:        row.UserID,
		CustomerName:  row.CustomerName,
		Items:         row.Items,
		Amount:        row.Amount,
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		Payment:       row.Payment,
		Address:       models.Address{Street: row.Address},
	}

	if order.UserID == "" {
		order.UserID = "default-user-id"
	}
	if order.CustomerName == "" {
		order.CustomerName = "Unknown"
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	if !models.ValidStatus(order.Status) {
		order.Status = models.StatusOrderPlaced
	}
	if order.Address.Street == "" {
		order.Address.Street = "Unknown Address"
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "Unknown"
	}
	if row.Date > 0 {
		order.Date = time.UnixMilli(row.Date)
	}

	return order
}
