// Package analytics turns a list of orders into the summary metrics
// rendered by the admin analytics screen. Everything here is pure and
// synchronous; malformed orders degrade gracefully instead of erroring.
package analytics

import (
	"sort"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

// monthLabel is the human-readable bucket key for monthly earnings,
// e.g. "January 2024".
const monthLabel = "January 2006"

type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Summary struct {
	TotalSales         float64                    `json:"totalSales"`
	TotalOrders        int                        `json:"totalOrders"`
	StatusDistribution map[models.OrderStatus]int `json:"orderStatusDistribution"`
	TopProducts        map[string]int             `json:"topProducts"`
	ProductRanking     []ProductSales             `json:"productRanking"`
	MonthlyEarnings    map[string]float64         `json:"monthlyEarnings"`
	AverageOrderValue  float64                    `json:"averageOrderValue"`
}

// Summarize computes the analytics summary over orders.
//
// Orders with no items contribute zero line items; orders with a zero date
// are excluded from the monthly-earnings histogram only (they still count
// toward totals). The result is always well-formed: an empty input yields
// zeroed totals and empty histograms, and the average order value is 0
// rather than NaN when there are no orders.
func Summarize(orders []models.Order) Summary {
	summary := Summary{
		StatusDistribution: map[models.OrderStatus]int{},
		TopProducts:        map[string]int{},
		ProductRanking:     []ProductSales{},
		MonthlyEarnings:    map[string]float64{},
	}

	// firstSeen preserves encounter order for the ranking tie-break.
	firstSeen := map[string]int{}

	for _, order := range orders {
		summary.TotalSales += order.Amount
		summary.TotalOrders++
		summary.StatusDistribution[order.Status]++

		for _, item := range order.Items {
			if item.Name == "" {
				continue
			}
			if _, ok := firstSeen[item.Name]; !ok {
				firstSeen[item.Name] = len(firstSeen)
			}
			summary.TopProducts[item.Name] += item.Quantity
		}

		if !order.Date.IsZero() {
			month := order.Date.Local().Format(monthLabel)
			summary.MonthlyEarnings[month] += order.Amount
		}
	}

	ranking := make([]ProductSales, 0, len(summary.TopProducts))
	for name, qty := range summary.TopProducts {
		ranking = append(ranking, ProductSales{Name: name, Quantity: qty})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return firstSeen[ranking[i].Name] < firstSeen[ranking[j].Name]
	})
	summary.ProductRanking = ranking

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalSales / float64(summary.TotalOrders)
	}

	return summary
}
