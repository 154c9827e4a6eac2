package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

const ordersSheet = "Orders"

// WriteWorkbook builds an Excel workbook with a single "Orders" sheet:
// header row plus one row per order.
func WriteWorkbook(orders []models.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &ExportHeader); err != nil {
		return nil, err
	}

	for i, order := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := ExportRow(order)
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadWorkbook parses the first sheet of an uploaded workbook into orders.
// The first row is the header; every following row is mapped through
// OrderFromRecord, so malformed cells are defaulted rather than rejected.
func ReadWorkbook(r io.Reader) ([]models.Order, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return []models.Order{}, nil
	}

	header := rows[0]
	orders := make([]models.Order, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		rec := Record{}
		for i, cell := range cells {
			if i < len(header) {
				rec[header[i]] = cell
			}
		}
		orders = append(orders, OrderFromRecord(rec))
	}
	return orders, nil
}
