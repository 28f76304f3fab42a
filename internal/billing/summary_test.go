package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicedesk/internal/billing"
	"invoicedesk/internal/domain"
)

func TestSummarize(t *testing.T) {
	invoices := []domain.Invoice{
		{Status: domain.InvoiceStatusPaid, TotalAmount: dec("1000"), PaidAmount: dec("1000")},
		{Status: domain.InvoiceStatusPending, TotalAmount: dec("500"), PaidAmount: dec("0")},
		{Status: domain.InvoiceStatusPartial, TotalAmount: dec("800"), PaidAmount: dec("300")},
	}

	s := billing.Summarize(invoices)

	assert.Equal(t, 3, s.TotalInvoices)
	assert.True(t, dec("2300").Equal(s.TotalBilled))
	assert.True(t, dec("1300").Equal(s.PaidAmount), "paid = %s", s.PaidAmount)
	assert.True(t, dec("1000").Equal(s.PendingAmount), "pending = %s", s.PendingAmount)
	assert.Equal(t, 1, s.CountByStatus[domain.InvoiceStatusPaid])
	assert.Equal(t, 1, s.CountByStatus[domain.InvoiceStatusPending])
	assert.Equal(t, 1, s.CountByStatus[domain.InvoiceStatusPartial])
}

func TestSummarize_Empty(t *testing.T) {
	s := billing.Summarize(nil)

	assert.Equal(t, 0, s.TotalInvoices)
	assert.True(t, s.PaidAmount.IsZero())
	assert.True(t, s.PendingAmount.IsZero())
	assert.Len(t, s.CountByStatus, 3)
}
