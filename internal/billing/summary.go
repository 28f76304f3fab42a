package billing

import (
	"github.com/shopspring/decimal"

	"invoicedesk/internal/domain"
)

// Summarize rolls invoices up for the dashboard. Paid invoices count fully as
// paid and Pending ones fully as pending; Partial invoices are split into the
// paid part and the remaining balance.
func Summarize(invoices []domain.Invoice) *domain.InvoiceSummary {
	summary := &domain.InvoiceSummary{
		TotalInvoices: len(invoices),
		TotalBilled:   decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
		CountByStatus: make(map[domain.InvoiceStatus]int, len(domain.AllInvoiceStatuses)),
	}
	for _, s := range domain.AllInvoiceStatuses {
		summary.CountByStatus[s] = 0
	}

	for i := range invoices {
		inv := &invoices[i]
		summary.TotalBilled = summary.TotalBilled.Add(inv.TotalAmount)
		summary.CountByStatus[inv.Status]++

		switch inv.Status {
		case domain.InvoiceStatusPaid:
			summary.PaidAmount = summary.PaidAmount.Add(inv.TotalAmount)
		case domain.InvoiceStatusPending:
			summary.PendingAmount = summary.PendingAmount.Add(inv.TotalAmount)
		case domain.InvoiceStatusPartial:
			summary.PaidAmount = summary.PaidAmount.Add(inv.PaidAmount)
			summary.PendingAmount = summary.PendingAmount.Add(inv.TotalAmount.Sub(inv.PaidAmount))
		}
	}
	return summary
}
