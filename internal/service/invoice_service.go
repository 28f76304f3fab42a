package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicedesk/internal/billing"
	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/port"
)

// CreateInvoiceInput is the DTO for creating an invoice. TotalAmount and
// PaidAmount are optional; a missing total is the sum of item prices.
type CreateInvoiceInput struct {
	Date           string                `json:"date" binding:"required,datetime=2006-01-02"`
	ClientName     string                `json:"clientName" binding:"required"`
	ClientAddress  string                `json:"clientAddress"`
	CompanyDetails domain.CompanyDetails `json:"companyDetails"`
	Status         domain.InvoiceStatus  `json:"status"`
	TotalAmount    *decimal.Decimal      `json:"totalAmount" swaggertype:"number"`
	PaidAmount     *decimal.Decimal      `json:"paidAmount" swaggertype:"number"`
	Items          domain.LineItems      `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceInput is the DTO for recording a payment or forcing a status.
// PaidAmount is added to the stored paid amount.
type UpdateInvoiceInput struct {
	Status     *domain.InvoiceStatus `json:"status"`
	PaidAmount *decimal.Decimal      `json:"paidAmount" swaggertype:"number"`
}

// InvoiceService defines the invoice business operations.
type InvoiceService interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	NextNumber(ctx context.Context) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Create(ctx context.Context, input *CreateInvoiceInput) (*domain.Invoice, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdateInvoiceInput) (*domain.Invoice, error)
	Summary(ctx context.Context) (*domain.InvoiceSummary, error)
}

type invoiceService struct {
	repo port.InvoiceRepository
	now  func() time.Time
	log  zerolog.Logger
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository) InvoiceService {
	return NewInvoiceServiceWithClock(repo, time.Now)
}

// NewInvoiceServiceWithClock is NewInvoiceService with an injectable clock for
// the month used in number prefixes.
func NewInvoiceServiceWithClock(repo port.InvoiceRepository, now func() time.Time) InvoiceService {
	return &invoiceService{
		repo: repo,
		now:  now,
		log:  logger.WithComponent("invoice_service"),
	}
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice.List: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) NextNumber(ctx context.Context) (string, error) {
	prefix := billing.Prefix(s.now())
	last, err := s.repo.LatestNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("invoice.NextNumber: %w", err)
	}
	return billing.NextNumber(prefix, last), nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) Create(ctx context.Context, input *CreateInvoiceInput) (*domain.Invoice, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	for i := range input.Items {
		if input.Items[i].Price.IsNegative() {
			return nil, domain.ErrInvalidLineItem
		}
	}

	total := input.Items.Total()
	if input.TotalAmount != nil {
		total = *input.TotalAmount
	}
	paid := decimal.Zero
	if input.PaidAmount != nil {
		paid = *input.PaidAmount
	}
	if total.IsNegative() || paid.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	number, err := s.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		InvoiceNumber:  number,
		Date:           input.Date,
		ClientName:     input.ClientName,
		ClientAddress:  input.ClientAddress,
		CompanyDetails: input.CompanyDetails,
		Status:         billing.InitialStatus(input.Status, paid, total),
		TotalAmount:    total,
		PaidAmount:     paid,
		Items:          fillCustomColumns(input.Items, input.CompanyDetails.CustomColumns),
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("invoice.Create: %w", err)
	}

	s.log.Info().
		Str("invoice_id", inv.ID.String()).
		Str("invoice_number", inv.InvoiceNumber).
		Str("status", string(inv.Status)).
		Msg("invoice created")
	return inv, nil
}

func (s *invoiceService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdateInvoiceInput) (*domain.Invoice, error) {
	req := billing.PaymentUpdate{Status: input.Status, PaidDelta: input.PaidAmount}
	if req.Status == nil && req.PaidDelta == nil {
		return nil, domain.ErrEmptyUpdate
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := billing.ApplyUpdate(billing.PaymentState{
		Status:      current.Status,
		PaidAmount:  current.PaidAmount,
		TotalAmount: current.TotalAmount,
	}, req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdatePayment(ctx, id, next.Status, next.PaidAmount)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invoice_id", id.String()).
		Str("from_status", string(current.Status)).
		Str("to_status", string(updated.Status)).
		Str("paid_amount", updated.PaidAmount.String()).
		Msg("invoice payment updated")
	return updated, nil
}

func (s *invoiceService) Summary(ctx context.Context) (*domain.InvoiceSummary, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice.Summary: %w", err)
	}
	return billing.Summarize(invoices), nil
}

// fillCustomColumns gives every item a value for each declared custom column,
// so a column added after some rows were entered still has a cell on each row.
func fillCustomColumns(items domain.LineItems, columns []string) domain.LineItems {
	for i := range items {
		for _, col := range columns {
			if _, ok := items[i].Field(col); !ok {
				items[i].SetField(col, "")
			}
		}
	}
	return items
}
