package services

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoSales = errors.New("no sales in the selected period")

// HSL colour, S and L in percent.
type HSL struct {
	H, S, L float64
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// RGB -> the same colour as a drawing.Color for go-chart.
func (c HSL) RGB() drawing.Color {
	s, l := c.S/100, c.L/100
	chroma := (1 - math.Abs(2*l-1)) * s
	h := math.Mod(c.H, 360) / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := l - chroma/2
	return drawing.Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

// Palette of the chart slices, in ranking order.
var Palette = []HSL{
	{186, 100, 50},
	{300, 100, 60},
	{150, 100, 50},
	{270, 100, 65},
	{25, 100, 55},
	{60, 100, 50},
	{340, 100, 60},
	{200, 100, 55},
	{120, 100, 40},
	{45, 100, 50},
}

var OthersColor = HSL{0, 0, 50}

// RenderSalesChart -> PNG pie chart of the chart slices.
func RenderSalesChart(w io.Writer, slices []ChartSlice) error {
	if len(slices) == 0 {
		return ErrNoSales
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Name, s.Percentage),
			Value: float64(s.Value),
			Style: chart.Style{
				FillColor:   s.fill.RGB(),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontSize:    9,
			},
		})
	}

	pie := chart.PieChart{
		Title:  "Produtos mais vendidos",
		Width:  720,
		Height: 720,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render sales chart: %w", err)
	}
	return nil
}
