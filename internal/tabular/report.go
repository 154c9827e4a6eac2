package tabular

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/trendora-shop/storefront-backend/internal/analytics"
	"github.com/trendora-shop/storefront-backend/internal/models"
)

// statusOrder fixes the row order of the status table.
var statusOrder = []models.OrderStatus{
	models.StatusOrderPlaced,
	models.StatusPacking,
	models.StatusShipped,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCanceled,
}

// WriteReport renders the analytics summary as a PDF document with four
// tables: summary metrics, status counts, monthly earnings and product
// quantities.
func WriteReport(summary analytics.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Order Analytics Report")
	pdf.Ln(14)

	writeTable(pdf, []string{"Metric", "Value"}, [][]string{
		{"Total Sales", formatAmount(summary.TotalSales)},
		{"Total Orders", strconv.Itoa(summary.TotalOrders)},
		{"Average Order Value", fmt.Sprintf("%.2f", summary.AverageOrderValue)},
	})

	statusRows := make([][]string, 0, len(statusOrder))
	for _, status := range statusOrder {
		if count, ok := summary.StatusDistribution[status]; ok {
			statusRows = append(statusRows, []string{string(status), strconv.Itoa(count)})
		}
	}
	writeTable(pdf, []string{"Order Status", "Count"}, statusRows)

	monthRows := make([][]string, 0, len(summary.MonthlyEarnings))
	for _, month := range sortedMonths(summary.MonthlyEarnings) {
		monthRows = append(monthRows, []string{month, formatAmount(summary.MonthlyEarnings[month])})
	}
	writeTable(pdf, []string{"Month", "Earnings"}, monthRows)

	productRows := make([][]string, 0, len(summary.ProductRanking))
	for _, product := range summary.ProductRanking {
		productRows = append(productRows, []string{product.Name, strconv.Itoa(product.Quantity)})
	}
	writeTable(pdf, []string{"Product Name", "Quantity Sold"}, productRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *gofpdf.Fpdf, header []string, rows [][]string) {
	const colWidth, rowHeight = 80.0, 8.0

	pdf.SetFont("Helvetica", "B", 11)
	for _, cell := range header {
		pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// sortedMonths returns month labels in chronological order.
func sortedMonths(earnings map[string]float64) []string {
	months := make([]string, 0, len(earnings))
	for month := range earnings {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		a, errA := time.Parse("January 2006", months[i])
		b, errB := time.Parse("January 2006", months[j])
		if errA != nil || errB != nil {
			return months[i] < months[j]
		}
		return a.Before(b)
	})
	return months
}
