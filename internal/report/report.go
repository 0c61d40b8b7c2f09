// Package report renders the human-readable payment summary that
// accompanies each exported batch file.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/labpay-dev/labpay/internal/model"
)

// Params holds everything the summary document shows.
type Params struct {
	Experiment string
	Currency   string
	Reference  string
	Rows       []model.PaymentRow // already in batch order
	Total      decimal.Decimal
	Generated  time.Time
}

// Write renders the summary as a landscape A4 PDF: title, payment table,
// grand total, signature line and generation timestamp.
func Write(w io.Writer, p Params) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Experiment: "+p.Experiment), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Index", "Name", "IBAN", "Amount", "Currency", "Reference"}
	widths := []float64{15, 65, 65, 25, 22, 85}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range p.Rows {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			row.Name,
			row.IBAN,
			row.Amount.StringFixed(2),
			p.Currency,
			p.Reference,
		}
		for j, c := range cells {
			align := "L"
			if j == 3 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 7, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Gesamtsumme: %s %s", p.Total.StringFixed(2), p.Currency)), "", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Unterschrift Experimentator: ____________________________", "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	stamp := fmt.Sprintf("Datei erstellt am %s um %s Uhr",
		p.Generated.Format("02.01.2006"), p.Generated.Format("15:04"))
	pdf.CellFormat(0, 8, tr(stamp), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering summary PDF: %w", err)
	}
	return nil
}
