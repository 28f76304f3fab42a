package xlsxexport

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/domain"
)

const (
	invoiceSheet = "Invoices"
	itemSheet    = "Line Items"
)

// invoiceColumns defines the header row of the invoice sheet.
var invoiceColumns = []interface{}{
	"Invoice Number",
	"Date",
	"Client Name",
	"Client Address",
	"Status",
	"Total Amount",
	"Paid Amount",
	"Balance",
	"Item Count",
	"Created At",
}

// itemColumns defines the fixed lead of the line item sheet header. Custom
// columns seen on any invoice follow in first-seen order.
var itemColumns = []string{
	"Invoice Number",
	"S.No",
	"Item Description",
	"Price",
}

// Exporter writes invoices as an XLSX workbook with one sheet of invoices
// and one of their line items.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the workbook for invoices to w.
func (e *Exporter) Export(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return fmt.Errorf("xlsxexport: renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return fmt.Errorf("xlsxexport: adding sheet: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsxexport: header style: %w", err)
	}

	if err := writeInvoices(f, header, invoices); err != nil {
		return err
	}
	if err := writeItems(f, header, invoices); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: writing workbook: %w", err)
	}
	return nil
}

func writeInvoices(f *excelize.File, header int, invoices []domain.Invoice) error {
	sw, err := f.NewStreamWriter(invoiceSheet)
	if err != nil {
		return fmt.Errorf("xlsxexport: %w", err)
	}
	if err := sw.SetColWidth(1, len(invoiceColumns), 18); err != nil {
		return fmt.Errorf("xlsxexport: %w", err)
	}
	if err := sw.SetRow("A1", invoiceColumns, excelize.RowOpts{StyleID: header}); err != nil {
		return fmt.Errorf("xlsxexport: %w", err)
	}

	for i := range invoices {
		inv := &invoices[i]
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			inv.InvoiceNumber,
			inv.Date,
			inv.ClientName,
			inv.ClientAddress,
			string(inv.Status),
			inv.TotalAmount.InexactFloat64(),
			inv.PaidAmount.InexactFloat64(),
			inv.Balance().InexactFloat64(),
			len(inv.Items),
			formatTime(inv.CreatedAt),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("xlsxexport: invoice row %d: %w", i+1, err)
		}
	}
	return sw.Flush()
}

func writeItems(f *excelize.File, header int, invoices []domain.Invoice) error {
	custom := customColumns(invoices)

	sw, err := f.NewStreamWriter(itemSheet)
	if err != nil {
		return fmt.Errorf("xlsxexport: %w", err)
	}
	head := make([]interface{}, 0, len(itemColumns)+len(custom))
	for _, c := range itemColumns {
		head = append(head, c)
	}
	for _, c := range custom {
		head = append(head, c)
	}
	if err := sw.SetRow("A1", head, excelize.RowOpts{StyleID: header}); err != nil {
		return fmt.Errorf("xlsxexport: %w", err)
	}

	rowNum := 2
	for i := range invoices {
		inv := &invoices[i]
		for n, item := range inv.Items {
			row := make([]interface{}, 0, len(head))
			row = append(row, inv.InvoiceNumber, n+1, item.Description, item.Price.InexactFloat64())
			for _, c := range custom {
				v, _ := item.Field(c)
				row = append(row, v)
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			if err := sw.SetRow(cell, row); err != nil {
				return fmt.Errorf("xlsxexport: item row %d: %w", rowNum, err)
			}
			rowNum++
		}
	}
	return sw.Flush()
}

// customColumns collects custom column names across invoices: declared
// columns first, then any extra item keys, each once in first-seen order.
func customColumns(invoices []domain.Invoice) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for i := range invoices {
		for _, c := range invoices[i].CompanyDetails.CustomColumns {
			add(c)
		}
		for _, item := range invoices[i].Items {
			for _, field := range item.Extra {
				add(field.Name)
			}
		}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// nonAlphanumeric matches any character that is not alphanumeric, underscore, or hyphen.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore collapses consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "invoices"
	}
	return s
}

// BuildFilename returns {sanitized_name}_{YYYY-MM-DD}.xlsx.
func BuildFilename(name string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(name), now.Format("2006-01-02"))
}
