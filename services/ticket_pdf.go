package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/goodzap/backoffice/models"
)

const (
	ticketWidth  = 80.0
	ticketHeight = 297.0
	ticketMargin = 5.0
)

// RenderOrderTicket writes a thermal-printer sized PDF for one order.
func RenderOrderTicket(w io.Writer, o models.Order, loc *time.Location) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: ticketWidth, Ht: ticketHeight},
	})
	pdf.SetMargins(ticketMargin, ticketMargin, ticketMargin)
	pdf.SetAutoPageBreak(true, ticketMargin)
	pdf.SetTitle("Pedido "+o.Code, true)
	pdf.AddPage()

	// core fonts are cp1252, emoji would print as garbage
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(strings.TrimSpace(emojiPattern.ReplaceAllString(s, "")))
	}

	if o.Company != nil && *o.Company != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, text(strings.ToUpper(*o.Company)), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, text("PEDIDO #"+o.Code), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, o.CreatedAt.In(loc).Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	divider(pdf)

	field := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 4.5, text(label), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, text(value), "", "L", false)
	}
	field("Cliente", o.Name)
	field("WhatsApp", o.WhatsApp)
	field("Endereço", o.Address)
	field("CEP", deref(o.PostalCode))
	divider(pdf)

	pdf.SetFont("Courier", "", 8.5)
	for _, line := range strings.Split(o.Items, "\n") {
		pdf.MultiCell(0, 4, text(line), "", "L", false)
	}
	divider(pdf)

	field("Observações", deref(o.Notes))
	field("Pagamento", deref(o.Payment))

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, text("TOTAL: "+o.Total), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render ticket for order %d: %w", o.ID, err)
	}
	return nil
}

func divider(pdf *fpdf.Fpdf) {
	pdf.Ln(1.5)
	y := pdf.GetY()
	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.Line(ticketMargin, y, ticketWidth-ticketMargin, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.Ln(2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
