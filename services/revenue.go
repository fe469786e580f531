package services

import (
	"time"

	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"github.com/shopspring/decimal"
)

// ComparisonWindow is the length of each dashboard revenue bucket.
const ComparisonWindow = 30 * 24 * time.Hour

type RevenueComparison struct {
	Current           float64 `json:"current"`
	Previous          float64 `json:"previous"`
	Growth            float64 `json:"growth"`
	CurrentFormatted  string  `json:"current_formatted"`
	PreviousFormatted string  `json:"previous_formatted"`
}

// SumTotals adds up the free-text totals of orders.
func SumTotals(orders []models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(utils.ParseMoney(o.Total))
	}
	return sum
}

// Growth -> percent change from previous to current. A period starting from
// zero counts as 100% growth when anything was sold, 0 otherwise.
func Growth(current, previous decimal.Decimal) float64 {
	switch {
	case previous.IsPositive():
		return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
	case current.IsPositive():
		return 100
	default:
		return 0
	}
}

// ComparisonBuckets -> [from, to) boundaries of the current and previous windows.
func ComparisonBuckets(now time.Time) (currentFrom, previousFrom time.Time) {
	currentFrom = now.Add(-ComparisonWindow)
	previousFrom = currentFrom.Add(-ComparisonWindow)
	return currentFrom, previousFrom
}

// CompareRevenue splits orders into the current and the previous window
// ending at now and compares their revenue. Older orders are ignored.
func CompareRevenue(orders []models.Order, now time.Time) RevenueComparison {
	currentFrom, previousFrom := ComparisonBuckets(now)

	var current, previous []models.Order
	for _, o := range orders {
		switch {
		case !o.CreatedAt.Before(currentFrom):
			current = append(current, o)
		case !o.CreatedAt.Before(previousFrom):
			previous = append(previous, o)
		}
	}

	cur, prev := SumTotals(current), SumTotals(previous)
	return RevenueComparison{
		Current:           cur.InexactFloat64(),
		Previous:          prev.InexactFloat64(),
		Growth:            Growth(cur, prev),
		CurrentFormatted:  utils.FormatCompactBRL(cur),
		PreviousFormatted: utils.FormatCompactBRL(prev),
	}
}
