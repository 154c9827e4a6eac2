package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

// WriteCSV writes the order list as a comma-delimited file: header row
// plus one row per order. Embedded delimiters are quoted.
func WriteCSV(w io.Writer, orders []models.Order) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, order := range orders {
		if err := writer.Write(ExportRow(order)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
