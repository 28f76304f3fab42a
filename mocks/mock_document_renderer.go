package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"invoicedesk/internal/domain"
)

// MockInvoiceRenderer is a mock implementation of port.InvoiceRenderer.
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(inv *domain.Invoice) ([]byte, error) {
	args := m.Called(inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockInvoiceExporter is a mock implementation of port.InvoiceExporter.
type MockInvoiceExporter struct {
	mock.Mock
}

func (m *MockInvoiceExporter) Export(w io.Writer, invoices []domain.Invoice) error {
	args := m.Called(w, invoices)
	return args.Error(0)
}
