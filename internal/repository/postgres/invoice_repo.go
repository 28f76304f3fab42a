package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceColumns renders date back in the form it was submitted.
const invoiceColumns = `id, invoice_number, to_char(date, 'YYYY-MM-DD') AS date, client_name,
	client_address, company_details, status, total_amount, paid_amount, items,
	created_at, updated_at`

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Items == nil {
		inv.Items = domain.LineItems{}
	}

	query := `INSERT INTO invoices (id, invoice_number, date, client_name, client_address,
		company_details, status, total_amount, paid_amount, items, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.Date, inv.ClientName, inv.ClientAddress,
		inv.CompanyDetails, string(inv.Status), inv.TotalAmount, inv.PaidAmount, inv.Items,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT "+invoiceColumns+" FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT "+invoiceColumns+" FROM invoices ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) LatestNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var number string
	err := r.db.GetContext(ctx, &number,
		`SELECT invoice_number FROM invoices
		 WHERE lower(invoice_number) LIKE lower($1) || '%'
		 ORDER BY created_at DESC
		 LIMIT 1`, prefix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("invoiceRepo.LatestNumberWithPrefix: %w", err)
	}
	return number, nil
}

func (r *invoiceRepo) UpdatePayment(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paid decimal.Decimal) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		`UPDATE invoices SET status = $1, paid_amount = $2, updated_at = $3
		 WHERE id = $4
		 RETURNING `+invoiceColumns,
		string(status), paid, time.Now().UTC(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.UpdatePayment: %w", err)
	}
	return &inv, nil
}
