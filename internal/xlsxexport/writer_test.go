package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/domain"
)

func sampleInvoices() []domain.Invoice {
	logo := domain.LineItem{Description: "Logo design", Price: decimal.NewFromInt(600)}
	logo.SetField("HSN", "9983")
	return []domain.Invoice{
		{
			ID:             uuid.New(),
			InvoiceNumber:  "INV-05-25-2",
			Date:           "2025-05-14",
			ClientName:     "Acme Traders",
			ClientAddress:  "12 Market Road",
			CompanyDetails: domain.CompanyDetails{CustomColumns: []string{"HSN"}},
			Status:         domain.InvoiceStatusPartial,
			TotalAmount:    decimal.NewFromInt(1000),
			PaidAmount:     decimal.NewFromInt(400),
			Items: domain.LineItems{
				logo,
				{Description: "Brochure", Price: decimal.NewFromInt(400)},
			},
			CreatedAt: time.Date(2025, 5, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:            uuid.New(),
			InvoiceNumber: "INV-05-25-1",
			Date:          "2025-05-02",
			ClientName:    "Blue Hill",
			Status:        domain.InvoiceStatusPaid,
			TotalAmount:   decimal.NewFromInt(250),
			PaidAmount:    decimal.NewFromInt(250),
			Items:         domain.LineItems{{Description: "Cards", Price: decimal.NewFromInt(250)}},
		},
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExport_InvoiceSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, sampleInvoices()))

	f := openWorkbook(t, buf.Bytes())
	rows, err := f.GetRows(invoiceSheet)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "Created At", rows[0][9])
	assert.Equal(t, "INV-05-25-2", rows[1][0])
	assert.Equal(t, "Partial", rows[1][4])
	assert.Equal(t, "1000", rows[1][5])
	assert.Equal(t, "400", rows[1][6])
	assert.Equal(t, "600", rows[1][7])
	assert.Equal(t, "2", rows[1][8])
	assert.Equal(t, "2025-05-14T09:30:00Z", rows[1][9])
	assert.Equal(t, "Blue Hill", rows[2][2])
}

func TestExport_ItemSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, sampleInvoices()))

	f := openWorkbook(t, buf.Bytes())
	rows, err := f.GetRows(itemSheet)
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Invoice Number", "S.No", "Item Description", "Price", "HSN"}, rows[0])
	assert.Equal(t, []string{"INV-05-25-2", "1", "Logo design", "600", "9983"}, rows[1])
	assert.Equal(t, "Brochure", rows[2][2])
	assert.Equal(t, "INV-05-25-1", rows[3][0])
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, nil))

	f := openWorkbook(t, buf.Bytes())
	rows, err := f.GetRows(invoiceSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"invoices", "invoices"},
		{"My Invoices 2025", "My_Invoices_2025"},
		{"a///b", "a_b"},
		{"___", "invoices"},
		{"", "invoices"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "invoices_2025-05-14.xlsx", BuildFilename("invoices", now))
}
