package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicedesk/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// List returns every invoice, newest first.
	List(ctx context.Context) ([]domain.Invoice, error)
	// LatestNumberWithPrefix returns the number of the most recently created
	// invoice whose number starts with prefix (case-insensitive), or "" if none.
	LatestNumberWithPrefix(ctx context.Context, prefix string) (string, error)
	// UpdatePayment writes only status and paid amount.
	UpdatePayment(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paid decimal.Decimal) (*domain.Invoice, error)
}
