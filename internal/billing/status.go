package billing

import (
	"github.com/shopspring/decimal"

	"invoicedesk/internal/domain"
)

// PaymentState is the stored part of an invoice the status engine reads.
type PaymentState struct {
	Status      domain.InvoiceStatus
	PaidAmount  decimal.Decimal
	TotalAmount decimal.Decimal
}

// PaymentUpdate is a status/payment change request. PaidDelta is an increment
// added to the stored paid amount, not a replacement.
type PaymentUpdate struct {
	Status    *domain.InvoiceStatus
	PaidDelta *decimal.Decimal
}

// ApplyUpdate computes the new status and paid amount.
//
// With a delta the status follows the new paid amount: at or above the total is
// Paid, anything above zero is Partial. When the new paid amount is still zero
// the requested status applies, or the stored one when none was given.
// Overpayment is kept.
// Without a delta the requested status is forced: Paid settles the full total,
// Pending clears the paid amount, Partial keeps it.
func ApplyUpdate(current PaymentState, req PaymentUpdate) (PaymentState, error) {
	if req.Status == nil && req.PaidDelta == nil {
		return current, domain.ErrEmptyUpdate
	}
	if req.Status != nil && !req.Status.Valid() {
		return current, domain.ErrInvalidStatus
	}

	next := current
	if req.PaidDelta != nil {
		if req.PaidDelta.IsNegative() {
			return current, domain.ErrInvalidPayment
		}
		next.PaidAmount = current.PaidAmount.Add(*req.PaidDelta)
		switch {
		case next.PaidAmount.GreaterThanOrEqual(current.TotalAmount):
			next.Status = domain.InvoiceStatusPaid
		case next.PaidAmount.IsPositive():
			next.Status = domain.InvoiceStatusPartial
		case req.Status != nil:
			next.Status = *req.Status
		}
		return next, nil
	}

	next.Status = *req.Status
	switch *req.Status {
	case domain.InvoiceStatusPaid:
		next.PaidAmount = current.TotalAmount
	case domain.InvoiceStatusPending:
		next.PaidAmount = decimal.Zero
	}
	return next, nil
}

// DeriveStatus maps a paid amount against the invoice total to a status.
func DeriveStatus(paid, total decimal.Decimal) domain.InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return domain.InvoiceStatusPaid
	case paid.IsPositive():
		return domain.InvoiceStatusPartial
	default:
		return domain.InvoiceStatusPending
	}
}

// InitialStatus picks the status stored on creation. A supplied status is kept
// unless the paid amount already covers the total, which is always Paid. That
// includes zero-total invoices. Without a supplied status it is derived from
// the amounts.
func InitialStatus(requested domain.InvoiceStatus, paid, total decimal.Decimal) domain.InvoiceStatus {
	if paid.GreaterThanOrEqual(total) {
		return domain.InvoiceStatusPaid
	}
	if requested == "" {
		return DeriveStatus(paid, total)
	}
	return requested
}
