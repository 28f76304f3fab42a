package port

import (
	"io"

	"invoicedesk/internal/domain"
)

// InvoiceRenderer lays an invoice out as a printable PDF.
type InvoiceRenderer interface {
	Render(inv *domain.Invoice) ([]byte, error)
}

// InvoiceExporter writes a spreadsheet of invoices.
type InvoiceExporter interface {
	Export(w io.Writer, invoices []domain.Invoice) error
}
