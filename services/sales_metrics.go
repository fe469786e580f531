package services

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ChartTopN      = 10
	RankingTopN    = 15
	OthersLabel    = "OUTROS"
	chartNameLimit = 20
)

// Lines mentioning any of these are totals, fees or notes, never products.
var skipKeywords = []string{"subtotal", "frete", "total", "observ", "pagamento", "troco"}

// blank also covers NBSP and the other Unicode spaces chat apps insert.
const blank = `[\s\p{Zs}]`

var (
	emojiPattern    = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}]`)
	pricePattern    = regexp.MustCompile(`(?i)R\$` + blank + `*[\d.,]+`)
	quantityPattern = regexp.MustCompile(`(?i)\d+x` + blank + `*`)
	leadingDash     = regexp.MustCompile(`^` + blank + `*-` + blank + `*`)
	trailingSep     = regexp.MustCompile(`[:|]` + blank + `*$`)
	separators      = regexp.MustCompile(`[:|]`)
	spaces          = regexp.MustCompile(blank + `+`)
)

// ExtractProducts -> product names found in the free-text items of one order.
// Example: "🍕 2x Pizza Calabresa: R$ 90,00" -> "PIZZA CALABRESA"
func ExtractProducts(text string) []string {
	upper := cases.Upper(language.BrazilianPortuguese)
	var products []string

	for _, line := range strings.Split(text, "\n") {
		if skipLine(line) {
			continue
		}

		name := emojiPattern.ReplaceAllString(line, "")
		name = pricePattern.ReplaceAllString(name, "")
		name = quantityPattern.ReplaceAllString(name, "")
		name = leadingDash.ReplaceAllString(name, "")
		name = trailingSep.ReplaceAllString(name, "")
		name = separators.ReplaceAllString(name, "")
		name = upper.String(strings.TrimSpace(name))
		name = strings.TrimSpace(spaces.ReplaceAllString(name, " "))

		if utf8.RuneCountInString(name) > 2 {
			products = append(products, name)
		}
	}
	return products
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == "-" {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range skipKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

type ProductCount struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

type ChartSlice struct {
	Name       string  `json:"name"`
	FullName   string  `json:"full_name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`

	fill HSL
}

type SalesMetrics struct {
	OrderCount       int            `json:"order_count"`
	TotalProducts    int            `json:"total_products"`
	BestSeller       string         `json:"best_seller"`
	Revenue          float64        `json:"revenue"`
	RevenueFormatted string         `json:"revenue_formatted"`
	Products         []ProductCount `json:"products"`
	Ranking          []ProductCount `json:"ranking"`
	Chart            []ChartSlice   `json:"chart"`
}

// Aggregate -> counts products across orders and prepares ranking and chart data.
// Products are sorted by quantity, ties by name, so the output is stable.
func Aggregate(orders []models.Order) SalesMetrics {
	counts := make(map[string]int)
	revenue := decimal.Zero

	for _, o := range orders {
		for _, p := range ExtractProducts(o.Items) {
			counts[p]++
		}
		revenue = revenue.Add(utils.ParseMoney(o.Total))
	}

	products := make([]ProductCount, 0, len(counts))
	total := 0
	for name, qty := range counts {
		products = append(products, ProductCount{Name: name, Quantity: qty})
		total += qty
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Quantity != products[j].Quantity {
			return products[i].Quantity > products[j].Quantity
		}
		return products[i].Name < products[j].Name
	})
	for i := range products {
		products[i].Percentage = percentage(products[i].Quantity, total)
	}

	m := SalesMetrics{
		OrderCount:       len(orders),
		TotalProducts:    total,
		BestSeller:       "-",
		Revenue:          revenue.InexactFloat64(),
		RevenueFormatted: utils.FormatBRL(revenue),
		Products:         products,
		Ranking:          products[:min(len(products), RankingTopN)],
		Chart:            chartSlices(products, total),
	}
	if len(products) > 0 {
		m.BestSeller = products[0].Name
	}
	return m
}

func chartSlices(products []ProductCount, total int) []ChartSlice {
	slices := make([]ChartSlice, 0, ChartTopN+1)
	others := 0
	for i, p := range products {
		if i >= ChartTopN {
			others += p.Quantity
			continue
		}
		slices = append(slices, ChartSlice{
			Name:       truncateName(p.Name),
			FullName:   p.Name,
			Value:      p.Quantity,
			Percentage: p.Percentage,
			Color:      Palette[i%len(Palette)].String(),
			fill:       Palette[i%len(Palette)],
		})
	}
	if others > 0 {
		slices = append(slices, ChartSlice{
			Name:       OthersLabel,
			FullName:   OthersLabel,
			Value:      others,
			Percentage: percentage(others, total),
			Color:      OthersColor.String(),
			fill:       OthersColor,
		})
	}
	return slices
}

func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= chartNameLimit {
		return name
	}
	return string([]rune(name)[:chartNameLimit]) + "..."
}

// percentage -> share of part in total, one decimal place.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
