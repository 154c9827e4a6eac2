package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendora-shop/storefront-backend/internal/analytics"
	"github.com/trendora-shop/storefront-backend/internal/models"
)

func newAnalyticsTestHandler(orders []models.Order) *AnalyticsHandler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &AnalyticsHandler{Repo: &stubOrderRepository{orders: orders}, Logger: logger}
}

func analyticsTestOrders() []models.Order {
	date := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	return []models.Order{
		{
			CustomerName: "Juan Dela Cruz",
			Items:        []models.OrderItem{{Name: "Widget", Quantity: 5}},
			Amount:       500,
			Status:       models.StatusDelivered,
			Date:         date,
		},
		{
			CustomerName: "Maria Santos",
			Items:        []models.OrderItem{{Name: "Gadget", Quantity: 1}},
			Amount:       100,
			Status:       models.StatusOrderPlaced,
			Date:         date,
		},
	}
}

func TestAnalyticsHandler_GetOrderAnalytics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newAnalyticsTestHandler(analyticsTestOrders())

	r := gin.New()
	r.GET("/analytics/orders", h.GetOrderAnalytics)

	req := httptest.NewRequest(http.MethodGet, "/analytics/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Analytics analytics.Summary `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Analytics.TotalOrders)
	assert.Equal(t, float64(600), resp.Analytics.TotalSales)
	assert.Equal(t, float64(300), resp.Analytics.AverageOrderValue)
	assert.Equal(t, 5, resp.Analytics.TopProducts["Widget"])
	assert.Equal(t, float64(600), resp.Analytics.MonthlyEarnings["June 2026"])
}

func TestAnalyticsHandler_ExportOrderAnalytics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newAnalyticsTestHandler(analyticsTestOrders())

	r := gin.New()
	r.GET("/analytics/orders/export", h.ExportOrderAnalytics)

	serve := func(format string) *httptest.ResponseRecorder {
		target := "/analytics/orders/export"
		if format != "" {
			target += "?format=" + format
		}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("csv is the default", func(t *testing.T) {
		w := serve("")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "order-analytics.csv")

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "Order ID")
		assert.Contains(t, lines[1], "Juan Dela Cruz")
	})

	t.Run("xlsx", func(t *testing.T) {
		w := serve("xlsx")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
		// XLSX files are ZIP containers.
		assert.Equal(t, "PK", w.Body.String()[:2])
	})

	t.Run("pdf", func(t *testing.T) {
		w := serve("pdf")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/pdf")
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})

	t.Run("json", func(t *testing.T) {
		w := serve("json")
		require.Equal(t, http.StatusOK, w.Code)

		var summary analytics.Summary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 2, summary.TotalOrders)
	})

	t.Run("unsupported format", func(t *testing.T) {
		w := serve("docx")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
