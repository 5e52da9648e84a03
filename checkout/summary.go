package checkout

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"shoaib/models"
)

// QRCode renders link as a PNG of the given pixel size.
func QRCode(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// Summary is the content of a printable order summary.
type Summary struct {
	ShopName string
	// Currency prefixes every amount. The core PDF fonts are Latin-1 only,
	// so this is a code such as "INR" rather than a symbol.
	Currency string
	Lines    []models.CartLine
	Total    decimal.Decimal
	Link     string
	Date     time.Time
}

func (s Summary) amount(d decimal.Decimal) string {
	return s.Currency + " " + d.StringFixed(2)
}

// RenderPDF writes the summary as a one-page A4 document with the deep
// link as a QR code, so the order can be sent from a phone.
func (s Summary) RenderPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(s.ShopName+" order summary", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(s.ShopName+" - Order Summary"))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, s.Date.Format("02 Jan 2006 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, l := range s.Lines {
		pdf.CellFormat(90, 8, tr(l.Product.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", l.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, s.amount(l.Product.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, s.amount(l.Subtotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(145, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, s.amount(s.Total), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	if s.Link != "" {
		png, err := QRCode(s.Link, 256)
		if err != nil {
			return nil, err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "Scan to send this order on WhatsApp")
		pdf.Ln(8)
		pdf.ImageOptions("qr", pdf.GetX(), pdf.GetY(), 50, 50, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
