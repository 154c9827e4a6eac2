package tabular

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trendora-shop/storefront-backend/internal/analytics"
	"github.com/trendora-shop/storefront-backend/internal/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID:           primitive.NewObjectID(),
			CustomerName: "Jane",
			Items:        []models.OrderItem{{Name: "Shirt", Quantity: 2}},
			Amount:       100,
			Status:       models.StatusDelivered,
			Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local),
		},
		{
			ID:           primitive.NewObjectID(),
			CustomerName: "Cruz, Maria",
			Items: []models.OrderItem{
				{Name: "Hat", Quantity: 1},
				{Name: "Scarf", Quantity: 3},
			},
			Amount: 250.75,
			Status: models.StatusPacking,
			Date:   time.Date(2024, time.July, 15, 0, 0, 0, 0, time.Local),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleOrders()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, ExportHeader, records[0])
	assert.Equal(t, "Jane", records[1][1])
	// A customer name with an embedded comma survives the round through
	// the CSV layer intact.
	assert.Equal(t, "Cruz, Maria", records[2][1])
	assert.Equal(t, "Hat, Scarf", records[2][2])
	assert.Equal(t, "4", records[2][3])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ExportHeader, records[0])
}

func TestWorkbookRoundTrip(t *testing.T) {
	orders := sampleOrders()

	data, err := WriteWorkbook(orders)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	imported, err := ReadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "Jane", imported[0].CustomerName)
	require.Len(t, imported[0].Items, 1)
	assert.Equal(t, "Shirt", imported[0].Items[0].Name)
	assert.Equal(t, 2, imported[0].Items[0].Quantity)
	assert.Equal(t, 100.0, imported[0].Amount)
	assert.Equal(t, models.StatusDelivered, imported[0].Status)
	assert.True(t, orders[0].Date.Equal(imported[0].Date))

	assert.Equal(t, "Cruz, Maria", imported[1].CustomerName)
	assert.Equal(t, models.StatusPacking, imported[1].Status)
}

func TestReadWorkbookEmptySheet(t *testing.T) {
	data, err := WriteWorkbook(nil)
	require.NoError(t, err)

	imported, err := ReadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, imported)
}

func TestWriteReport(t *testing.T) {
	summary := analytics.Summarize(sampleOrders())

	data, err := WriteReport(summary)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
