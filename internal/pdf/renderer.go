// Package pdf lays invoices out as printable A4 documents.
package pdf

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"invoicedesk/internal/billing"
	"invoicedesk/internal/config"
	"invoicedesk/internal/domain"
)

const (
	pageLeft     = 10.0
	pageWidth    = 190.0
	rightBlockX  = 120.0
	tableTop     = 110.0
	lineHeight   = 6.0
	footerTop    = 270.0
	contentLimit = 235.0
	fontFamily   = "Helvetica"
	qrImageName  = "payment-qr"
	qrSize       = 30.0
)

// Renderer composes invoice PDFs using the issuing company's branding.
// Bank details missing from an invoice fall back to the configured defaults.
type Renderer struct {
	company config.CompanyConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(company config.CompanyConfig) *Renderer {
	return &Renderer{company: company}
}

// Filename returns the download name for an invoice PDF.
func Filename(inv *domain.Invoice) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, inv.InvoiceNumber)
	if name == "" {
		name = inv.ID.String()
	}
	return "Invoice_" + name + ".pdf"
}

// Render returns the PDF bytes for inv.
func (r *Renderer) Render(inv *domain.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageLeft, 10, pageLeft)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle("Invoice "+inv.InvoiceNumber, true)
	doc.AddPage()

	l := &layout{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), inv: inv, company: r.company}
	l.header()
	y := l.parties()
	y = l.table(max(y+5, tableTop))
	l.totals(y + 8)
	l.footer()

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf.Render: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Render: %w", err)
	}
	return buf.Bytes(), nil
}

type layout struct {
	doc     *gofpdf.Fpdf
	tr      func(string) string
	inv     *domain.Invoice
	company config.CompanyConfig
}

func (l *layout) text(x, y float64, style string, size float64, s string) {
	l.doc.SetFont(fontFamily, style, size)
	l.doc.Text(x, y, l.tr(s))
}

func (l *layout) header() {
	l.text(pageLeft, 22, "B", 26, "INVOICE")
	if fileExists(l.company.LogoPath) {
		l.doc.ImageOptions(l.company.LogoPath, 150, 8, 50, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
}

// parties draws the bill-to block on the left and the payment block on the
// right. It returns the lowest y used.
func (l *layout) parties() float64 {
	inv := l.inv
	l.text(pageLeft, 45, "", 11, "Date: "+displayDate(inv.Date))
	l.text(pageLeft, 52, "", 11, "No. Invoice : "+billing.DisplayNumber(inv.InvoiceNumber))
	l.text(pageLeft, 64, "B", 11, "Bill to:")
	l.text(pageLeft, 71, "B", 11, inv.ClientName)

	l.doc.SetFont(fontFamily, "", 10)
	l.doc.SetXY(pageLeft, 74)
	l.doc.MultiCell(80, 5, l.tr(inv.ClientAddress), "", "L", false)
	leftBottom := l.doc.GetY()

	cd := inv.CompanyDetails
	rows := []struct{ label, value string }{
		{"Account number", firstNonEmpty(cd.AccountNumber, l.company.AccountNumber)},
		{"Account name", firstNonEmpty(cd.AccountName, l.company.AccountName)},
		{"IFSC Code", firstNonEmpty(cd.IFSCCode, l.company.IFSCCode)},
		{"Branch", firstNonEmpty(cd.Branch, l.company.Branch)},
		{"PAN Card", firstNonEmpty(cd.PANNumber, cd.PAN, l.company.PANNumber)},
	}
	l.text(rightBlockX, 45, "B", 11, "Payment Method: Bank Transfer")
	y := 52.0
	for _, row := range rows {
		l.text(rightBlockX, y, "", 10, fmt.Sprintf("%s: %s", row.label, row.value))
		y += lineHeight
	}
	if cd.BankDetails != "" {
		l.doc.SetFont(fontFamily, "", 9)
		l.doc.SetXY(rightBlockX, y-3)
		l.doc.MultiCell(80, 4.5, l.tr(cd.BankDetails), "", "L", false)
		y = l.doc.GetY()
	}
	return max(leftBottom, y)
}

type column struct {
	title string
	width float64
	align string
	value func(n int, item *domain.LineItem) string
}

func (l *layout) columns() []column {
	custom := l.inv.CompanyDetails.CustomColumns
	const serialW, priceW, minDescW = 15.0, 35.0, 40.0
	customW := 25.0
	descW := pageWidth - serialW - priceW - customW*float64(len(custom))
	if descW < minDescW {
		descW = minDescW
		customW = (pageWidth - serialW - priceW - descW) / float64(len(custom))
	}

	cols := []column{
		{"S.No", serialW, "C", func(n int, _ *domain.LineItem) string { return fmt.Sprint(n) }},
		{"Item Description", descW, "L", func(_ int, item *domain.LineItem) string { return item.Description }},
	}
	for _, name := range custom {
		cols = append(cols, column{name, customW, "C", func(_ int, item *domain.LineItem) string {
			if v, ok := item.Field(name); ok && v != "" {
				return v
			}
			return "-"
		}})
	}
	cols = append(cols, column{"Price in Rs", priceW, "R", func(_ int, item *domain.LineItem) string {
		return rupees(item.Price)
	}})
	return cols
}

// table draws the line items starting at top and returns the y below it,
// continuing onto new pages when rows run past the content area.
func (l *layout) table(top float64) float64 {
	cols := l.columns()
	y := l.tableHeader(cols, top)

	l.doc.SetFont(fontFamily, "", 10)
	for i := range l.inv.Items {
		item := &l.inv.Items[i]
		cells := make([]string, len(cols))
		lines := 1
		for c, col := range cols {
			cells[c] = l.tr(col.value(i+1, item))
			lines = max(lines, len(l.doc.SplitLines([]byte(cells[c]), col.width-2)))
		}
		rowH := float64(lines) * lineHeight

		if y+rowH > contentLimit {
			l.doc.AddPage()
			y = l.tableHeader(cols, 20)
			l.doc.SetFont(fontFamily, "", 10)
		}

		x := pageLeft
		for c, col := range cols {
			l.doc.Rect(x, y, col.width, rowH, "D")
			l.doc.SetXY(x+1, y)
			l.doc.MultiCell(col.width-2, lineHeight, cells[c], "", col.align, false)
			x += col.width
		}
		y += rowH
	}
	return y
}

func (l *layout) tableHeader(cols []column, y float64) float64 {
	l.doc.SetFont(fontFamily, "B", 10)
	l.doc.SetFillColor(235, 235, 235)
	l.doc.SetXY(pageLeft, y)
	for _, col := range cols {
		l.doc.CellFormat(col.width, 8, l.tr(col.title), "1", 0, "C", true, 0, "")
	}
	return y + 8
}

// totals draws the amount box on the right and, while a balance is owed,
// a payment QR code on the left.
func (l *layout) totals(y float64) {
	if y+40 > contentLimit {
		l.doc.AddPage()
		y = 20
	}
	inv := l.inv

	l.doc.SetFillColor(235, 235, 235)
	l.doc.SetFont(fontFamily, "B", 11)
	l.doc.SetXY(rightBlockX, y)
	l.doc.CellFormat(80, 8, "Amount to be transferred", "1", 2, "C", true, 0, "")
	l.doc.SetFont(fontFamily, "B", 12)
	l.doc.CellFormat(80, 10, "Total Rs: "+rupees(inv.TotalAmount), "1", 2, "C", false, 0, "")
	if inv.PaidAmount.IsPositive() {
		l.doc.SetFont(fontFamily, "", 10)
		l.doc.CellFormat(80, 7, fmt.Sprintf("Paid Rs: %s   Balance Rs: %s", rupees(inv.PaidAmount), rupees(inv.Balance())), "1", 2, "C", false, 0, "")
	}

	if !inv.Balance().IsPositive() {
		return
	}
	png, err := qrcode.Encode(paymentPayload(l.company, inv), qrcode.Medium, 256)
	if err != nil {
		l.doc.SetError(fmt.Errorf("payment qr: %w", err))
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	l.doc.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	l.doc.ImageOptions(qrImageName, pageLeft, y, qrSize, qrSize, false, opts, 0, "")
	l.text(pageLeft, y+qrSize+4, "", 8, "Scan to pay "+rupees(inv.Balance()))
}

func (l *layout) footer() {
	c := l.company
	if fileExists(c.SignaturePath) {
		l.doc.ImageOptions(c.SignaturePath, 150, 242, 40, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
	if c.Signatory != "" {
		l.text(150, 262, "B", 10, c.Signatory)
		l.doc.Line(150, 264, 195, 264)
	}

	var contact []string
	for _, s := range []string{c.Phone, c.Email, c.Website} {
		if s != "" {
			contact = append(contact, s)
		}
	}
	if len(contact) > 0 {
		l.doc.SetFont(fontFamily, "", 9)
		l.doc.SetXY(pageLeft, footerTop)
		l.doc.CellFormat(pageWidth, 5, l.tr(strings.Join(contact, "  |  ")), "T", 0, "C", false, 0, "")
	}
}

// paymentPayload builds the QR payload. With a UPI id it is a upi:// payment
// intent for the outstanding balance; otherwise plain text naming invoice and
// balance.
func paymentPayload(c config.CompanyConfig, inv *domain.Invoice) string {
	balance := inv.Balance().StringFixed(2)
	if c.UPIID == "" {
		return fmt.Sprintf("Invoice %s\nBalance Rs %s", inv.InvoiceNumber, balance)
	}
	q := url.Values{}
	q.Set("pa", c.UPIID)
	if c.Name != "" {
		q.Set("pn", c.Name)
	}
	q.Set("am", balance)
	q.Set("cu", "INR")
	q.Set("tn", inv.InvoiceNumber)
	return "upi://pay?" + q.Encode()
}

func rupees(d decimal.Decimal) string {
	return d.Round(2).String() + "/-"
}

func displayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
