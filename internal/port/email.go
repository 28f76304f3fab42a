package port

import "context"

// InvoiceEmail is a message telling a client their invoice is ready.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	InvoiceNumber string
	AmountDue     string
	DocumentURL   string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, msg InvoiceEmail) error
}
