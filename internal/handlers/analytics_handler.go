package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora-shop/storefront-backend/internal/adapters/repository"
	"github.com/trendora-shop/storefront-backend/internal/analytics"
	"github.com/trendora-shop/storefront-backend/internal/tabular"
	"github.com/trendora-shop/storefront-backend/utils"
)

type AnalyticsHandler struct {
	Repo   repository.OrderRepository
	Logger *logrus.Logger
}

func NewAnalyticsHandler(db *mongo.Database, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Repo: repository.NewOrderRepository(db), Logger: logger}
}

// GetOrderAnalytics recomputes the analytics summary from the current
// order list. The summary is ephemeral; nothing is persisted.
func (h *AnalyticsHandler) GetOrderAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Repo.GetAllOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch orders"))
		return
	}

	summary := analytics.Summarize(orders)

	h.Logger.WithFields(logrus.Fields{
		"total_orders": summary.TotalOrders,
		"total_sales":  summary.TotalSales,
	}).Info("Generated order analytics")

	c.JSON(http.StatusOK, utils.SuccessResponse("Analytics generated successfully", gin.H{"analytics": summary}))
}

// ExportOrderAnalytics exports the order list or its summary in the
// requested format. csv and xlsx carry the order rows; pdf and json
// carry the computed summary.
func (h *AnalyticsHandler) ExportOrderAnalytics(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	orders, err := h.Repo.GetAllOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch orders"))
		return
	}

	var data []byte
	var contentType, filename string

	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := tabular.WriteCSV(&buf, orders); err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to export orders"))
			return
		}
		data = buf.Bytes()
		contentType = "text/csv"
		filename = "order-analytics.csv"
	case "xlsx":
		data, err = tabular.WriteWorkbook(orders)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to export orders"))
			return
		}
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "order-analytics.xlsx"
	case "pdf":
		data, err = tabular.WriteReport(analytics.Summarize(orders))
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to export report"))
			return
		}
		contentType = "application/pdf"
		filename = "order-analytics-report.pdf"
	case "json":
		data, err = json.MarshalIndent(analytics.Summarize(orders), "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to export summary"))
			return
		}
		contentType = "application/json"
		filename = "order-analytics.json"
	default:
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Unsupported export format"))
		return
	}

	h.Logger.WithFields(logrus.Fields{
		"format": format,
		"orders": len(orders),
	}).Info("Exported order analytics")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
