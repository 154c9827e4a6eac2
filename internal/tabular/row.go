// Package tabular maps orders to and from flat rows of named columns.
// The same row mapping backs the CSV export, the Excel workbook
// import/export and the PDF report, so every format agrees on column
// names and defaults.
package tabular

import (
	"strconv"
	"strings"
	"time"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

const (
	colOrderID       = "Order ID"
	colCustomerName  = "Customer Name"
	colProductName   = "Product Name"
	colQuantity      = "Quantity"
	colPrice         = "Price"
	colStatus        = "Status"
	colDateOrdered   = "Date Ordered"
	colUserID        = "User ID"
	colAddress       = "Address"
	colPaymentMethod = "Payment Method"
	colPaymentStatus = "Payment Status"
)

// DateLayout is the locale date format used in exported rows.
const DateLayout = "1/2/2006"

// ExportHeader lists the exported columns in order.
var ExportHeader = []string{
	colOrderID,
	colCustomerName,
	colProductName,
	colQuantity,
	colPrice,
	colStatus,
	colDateOrdered,
}

// Record is one imported row keyed by column name. Absent columns are
// simply missing keys; the mapping fills defaults for them.
type Record map[string]string

// ExportRow flattens an order into one exported row: product names are
// joined with ", " and quantities are summed across line items.
func ExportRow(order models.Order) []string {
	names := make([]string, 0, len(order.Items))
	quantity := 0
	for _, item := range order.Items {
		names = append(names, item.Name)
		quantity += item.Quantity
	}

	date := ""
	if !order.Date.IsZero() {
		date = order.Date.Format(DateLayout)
	}

	return []string{
		order.ID.Hex(),
		order.CustomerName,
		strings.Join(names, ", "),
		strconv.Itoa(quantity),
		formatAmount(order.Amount),
		string(order.Status),
		date,
	}
}

// OrderFromRecord maps an imported row back to an order, defaulting every
// missing or malformed cell instead of rejecting the row. An unparseable
// date yields a zero Date; such orders are excluded from date-keyed
// aggregation downstream but still count toward totals.
func OrderFromRecord(rec Record) models.Order {
	order := models.Order{
		UserID:        stringCell(rec, colUserID, "default-user-id"),
		CustomerName:  stringCell(rec, colCustomerName, "Unknown"),
		Items:         itemsFromRecord(rec),
		Amount:        floatCell(rec, colPrice),
		Status:        statusCell(rec),
		PaymentMethod: stringCell(rec, colPaymentMethod, "Unknown"),
		Payment:       rec[colPaymentStatus] == "Paid",
		Address: models.Address{
			Street: stringCell(rec, colAddress, "Unknown Address"),
		},
	}

	if raw := strings.TrimSpace(rec[colDateOrdered]); raw != "" {
		if date, err := time.ParseInLocation(DateLayout, raw, time.Local); err == nil {
			order.Date = date
		}
	}

	return order
}

func itemsFromRecord(rec Record) []models.OrderItem {
	raw := strings.TrimSpace(rec[colProductName])
	if raw == "" {
		return []models.OrderItem{}
	}

	quantity := 1
	if parsed, err := strconv.Atoi(strings.TrimSpace(rec[colQuantity])); err == nil {
		quantity = parsed
	}

	names := strings.Split(raw, ", ")
	items := make([]models.OrderItem, 0, len(names))
	for _, name := range names {
		items = append(items, models.OrderItem{Name: name, Quantity: quantity})
	}
	return items
}

func stringCell(rec Record, col, fallback string) string {
	if value := strings.TrimSpace(rec[col]); value != "" {
		return value
	}
	return fallback
}

func floatCell(rec Record, col string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
	if err != nil {
		return 0
	}
	return value
}

func statusCell(rec Record) models.OrderStatus {
	status := models.OrderStatus(strings.TrimSpace(rec[colStatus]))
	if !models.ValidStatus(status) {
		return models.StatusOrderPlaced
	}
	return status
}

// formatAmount renders an amount without a fixed number of decimals, the
// way the admin screens display it.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
