package noop

import (
	"context"

	"github.com/rs/zerolog"

	"invoicedesk/internal/logger"
	"invoicedesk/internal/port"
)

type noopSender struct {
	log zerolog.Logger
}

// NewNoopSender creates a no-op EmailSender that logs the message instead of
// delivering it.
func NewNoopSender() port.EmailSender {
	return &noopSender{log: logger.WithComponent("email_noop")}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, msg port.InvoiceEmail) error {
	s.log.Info().
		Str("to", msg.ToEmail).
		Str("invoice_number", msg.InvoiceNumber).
		Str("amount_due", msg.AmountDue).
		Str("url", msg.DocumentURL).
		Msg("invoice email not sent (noop provider)")
	return nil
}
