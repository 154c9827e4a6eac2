package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Empty(t, summary.StatusDistribution)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.MonthlyEarnings)
	assert.Equal(t, 0.0, summary.AverageOrderValue)
	assert.False(t, math.IsNaN(summary.AverageOrderValue))

	summary = Summarize([]models.Order{})
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.AverageOrderValue)
}

func TestSummarizeTotals(t *testing.T) {
	orders := []models.Order{
		{Amount: 100, Status: models.StatusDelivered},
		{Amount: 250.5, Status: models.StatusOrderPlaced},
		{Status: models.StatusCanceled}, // missing amount counts as 0
	}

	summary := Summarize(orders)

	assert.Equal(t, 350.5, summary.TotalSales)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.InDelta(t, 350.5/3, summary.AverageOrderValue, 1e-9)
}

func TestSummarizeStatusDistribution(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusDelivered},
		{Status: models.StatusDelivered},
		{Status: models.StatusShipped},
		{Status: models.StatusCanceled},
	}

	summary := Summarize(orders)

	assert.Equal(t, 2, summary.StatusDistribution[models.StatusDelivered])
	assert.Equal(t, 1, summary.StatusDistribution[models.StatusShipped])
	assert.Equal(t, 1, summary.StatusDistribution[models.StatusCanceled])

	// Status counts always sum to the order count.
	total := 0
	for _, count := range summary.StatusDistribution {
		total += count
	}
	assert.Equal(t, summary.TotalOrders, total)
}

func TestSummarizeTopProducts(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "Widget", Quantity: 2}}},
		{Items: []models.OrderItem{
			{Name: "Widget", Quantity: 3},
			{Name: "Gadget", Quantity: 1},
		}},
	}

	summary := Summarize(orders)

	assert.Equal(t, map[string]int{"Widget": 5, "Gadget": 1}, summary.TopProducts)

	require.Len(t, summary.ProductRanking, 2)
	assert.Equal(t, ProductSales{Name: "Widget", Quantity: 5}, summary.ProductRanking[0])
	assert.Equal(t, ProductSales{Name: "Gadget", Quantity: 1}, summary.ProductRanking[1])
}

func TestSummarizeRankingTieBreak(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "Scarf", Quantity: 2}}},
		{Items: []models.OrderItem{{Name: "Beanie", Quantity: 2}}},
		{Items: []models.OrderItem{{Name: "Gloves", Quantity: 4}}},
	}

	summary := Summarize(orders)

	require.Len(t, summary.ProductRanking, 3)
	assert.Equal(t, "Gloves", summary.ProductRanking[0].Name)
	// Equal quantities keep first-encountered order.
	assert.Equal(t, "Scarf", summary.ProductRanking[1].Name)
	assert.Equal(t, "Beanie", summary.ProductRanking[2].Name)
}

func TestSummarizeMonthlyEarnings(t *testing.T) {
	january := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Amount: 100, Date: january},
		{Amount: 50, Date: january.AddDate(0, 0, 10)},
		{Amount: 75, Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 30}, // zero date: excluded from the histogram only
	}

	summary := Summarize(orders)

	assert.Equal(t, 150.0, summary.MonthlyEarnings[january.Local().Format("January 2006")])
	assert.Len(t, summary.MonthlyEarnings, 2)

	// The dateless order still counts toward totals.
	assert.Equal(t, 255.0, summary.TotalSales)
	assert.Equal(t, 4, summary.TotalOrders)
}

func TestSummarizeSkipsEmptyItems(t *testing.T) {
	orders := []models.Order{
		{Items: nil, Amount: 10, Status: models.StatusPacking},
		{Items: []models.OrderItem{{Name: "", Quantity: 5}}},
	}

	summary := Summarize(orders)

	assert.Empty(t, summary.TopProducts)
	assert.Equal(t, 2, summary.TotalOrders)
}
