package services

import (
	"fmt"
	"time"

	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"github.com/xuri/excelize/v2"
)

const (
	OrdersSheet  = "Pedidos"
	RankingSheet = "Ranking"
)

// OrdersWorkbook -> one row per order plus a total line.
func OrdersWorkbook(orders []models.Order, loc *time.Location) (*excelize.File, error) {
	f, err := newWorkbook(OrdersSheet,
		[]interface{}{"Data", "Código", "Cliente", "WhatsApp", "Endereço", "Pedido", "Pagamento", "Total"})
	if err != nil {
		return nil, err
	}

	for i, o := range orders {
		row := []interface{}{
			o.CreatedAt.In(loc).Format("02/01/2006 15:04"),
			o.Code,
			o.Name,
			o.WhatsApp,
			o.Address,
			o.Items,
			deref(o.Payment),
			utils.ParseMoney(o.Total).InexactFloat64(),
		}
		if err := setRow(f, OrdersSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	total := []interface{}{"", "", "", "", "", "", "TOTAL", SumTotals(orders).InexactFloat64()}
	if err := setRow(f, OrdersSheet, len(orders)+2, total); err != nil {
		return nil, err
	}

	for col, width := range map[string]float64{"A": 17, "B": 12, "C": 28, "D": 16, "E": 40, "F": 60, "G": 16, "H": 12} {
		if err := f.SetColWidth(OrdersSheet, col, col, width); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// RankingWorkbook -> the full product ranking of a metrics run.
func RankingWorkbook(m SalesMetrics) (*excelize.File, error) {
	f, err := newWorkbook(RankingSheet, []interface{}{"Posição", "Produto", "Quantidade", "Percentual (%)"})
	if err != nil {
		return nil, err
	}

	for i, p := range m.Products {
		if err := setRow(f, RankingSheet, i+2, []interface{}{i + 1, p.Name, p.Quantity, p.Percentage}); err != nil {
			return nil, err
		}
	}
	if err := setRow(f, RankingSheet, len(m.Products)+2, []interface{}{"", "TOTAL", m.TotalProducts, ""}); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(RankingSheet, "B", "B", 40); err != nil {
		return nil, err
	}
	return f, nil
}

func newWorkbook(sheet string, header []interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F2937"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}
