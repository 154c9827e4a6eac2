package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

func TestExportRow(t *testing.T) {
	order := models.Order{
		ID:           primitive.NewObjectID(),
		CustomerName: "Jane",
		Items: []models.OrderItem{
			{Name: "Shirt", Quantity: 2},
			{Name: "Hat", Quantity: 1},
		},
		Amount: 350.5,
		Status: models.StatusShipped,
		Date:   time.Date(2024, time.March, 9, 15, 0, 0, 0, time.Local),
	}

	row := ExportRow(order)

	require.Len(t, row, len(ExportHeader))
	assert.Equal(t, order.ID.Hex(), row[0])
	assert.Equal(t, "Jane", row[1])
	assert.Equal(t, "Shirt, Hat", row[2])
	assert.Equal(t, "3", row[3])
	assert.Equal(t, "350.5", row[4])
	assert.Equal(t, "Shipped", row[5])
	assert.Equal(t, "3/9/2024", row[6])
}

func TestOrderFromRecordDefaults(t *testing.T) {
	order := OrderFromRecord(Record{})

	assert.Equal(t, "default-user-id", order.UserID)
	assert.Equal(t, "Unknown", order.CustomerName)
	assert.Empty(t, order.Items)
	assert.Equal(t, 0.0, order.Amount)
	assert.Equal(t, models.StatusOrderPlaced, order.Status)
	assert.Equal(t, "Unknown Address", order.Address.Street)
	assert.Equal(t, "Unknown", order.PaymentMethod)
	assert.False(t, order.Payment)
	assert.True(t, order.Date.IsZero())
}

func TestOrderFromRecordQuantityDefault(t *testing.T) {
	order := OrderFromRecord(Record{
		"Product Name": "Shirt, Hat",
	})

	require.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderItem{Name: "Shirt", Quantity: 1}, order.Items[0])
	assert.Equal(t, models.OrderItem{Name: "Hat", Quantity: 1}, order.Items[1])
}

func TestOrderFromRecordPaymentStatus(t *testing.T) {
	assert.True(t, OrderFromRecord(Record{"Payment Status": "Paid"}).Payment)
	assert.False(t, OrderFromRecord(Record{"Payment Status": "paid"}).Payment)
	assert.False(t, OrderFromRecord(Record{"Payment Status": "Pending"}).Payment)
	assert.False(t, OrderFromRecord(Record{}).Payment)
}

func TestOrderFromRecordInvalidCells(t *testing.T) {
	order := OrderFromRecord(Record{
		"Product Name": "Shirt",
		"Quantity":     "lots",
		"Price":        "not-a-number",
		"Status":       "Lost in transit",
		"Date Ordered": "yesterday",
	})

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 0.0, order.Amount)
	assert.Equal(t, models.StatusOrderPlaced, order.Status)
	assert.True(t, order.Date.IsZero())
}

func TestRoundTrip(t *testing.T) {
	order := models.Order{
		ID:           primitive.NewObjectID(),
		CustomerName: "Jane",
		Items:        []models.OrderItem{{Name: "X", Quantity: 2}},
		Amount:       100,
		Status:       models.StatusDelivered,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local),
	}

	row := ExportRow(order)
	rec := Record{}
	for i, col := range ExportHeader {
		rec[col] = row[i]
	}

	imported := OrderFromRecord(rec)

	assert.Equal(t, "Jane", imported.CustomerName)
	require.Len(t, imported.Items, 1)
	assert.Equal(t, 2, imported.Items[0].Quantity)
	assert.Equal(t, 100.0, imported.Amount)
	assert.Equal(t, models.StatusDelivered, imported.Status)
	// Exported rows carry no payment column, so payment defaults to false.
	assert.False(t, imported.Payment)

	// Re-exporting reproduces the same cells apart from the new order ID.
	row2 := ExportRow(imported)
	assert.Equal(t, row[1:], row2[1:])
}
