package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/domain"
	"invoicedesk/mocks"
)

func invoice(status domain.InvoiceStatus, paid, total int64) domain.Invoice {
	return domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-05-25-1",
		Status:        status,
		PaidAmount:    decimal.NewFromInt(paid),
		TotalAmount:   decimal.NewFromInt(total),
	}
}

func TestBackfill_CorrectsMismatches(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	settled := invoice(domain.InvoiceStatusPartial, 1000, 1000)
	unknown := invoice("open", 200, 1000)
	fine := invoice(domain.InvoiceStatusPending, 0, 1000)

	repo.On("List", mock.Anything).Return([]domain.Invoice{settled, unknown, fine}, nil)
	repo.On("UpdatePayment", mock.Anything, settled.ID, domain.InvoiceStatusPaid, settled.PaidAmount).
		Return(&domain.Invoice{}, nil)
	repo.On("UpdatePayment", mock.Anything, unknown.ID, domain.InvoiceStatusPartial, unknown.PaidAmount).
		Return(&domain.Invoice{}, nil)

	fixed, err := backfill(context.Background(), repo, false)

	require.NoError(t, err)
	assert.Equal(t, 2, fixed)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdatePayment", mock.Anything, fine.ID, mock.Anything, mock.Anything)
}

func TestBackfill_DryRunWritesNothing(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything).Return([]domain.Invoice{invoice(domain.InvoiceStatusPending, 500, 500)}, nil)

	fixed, err := backfill(context.Background(), repo, true)

	require.NoError(t, err)
	assert.Equal(t, 1, fixed)
	repo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackfill_SkipsFailedUpdates(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything).Return([]domain.Invoice{invoice(domain.InvoiceStatusPending, 500, 500)}, nil)
	repo.On("UpdatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("deadlock"))

	fixed, err := backfill(context.Background(), repo, false)

	require.NoError(t, err)
	assert.Equal(t, 0, fixed)
}

func TestBackfill_ListError(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything).Return(nil, errors.New("conn refused"))

	_, err := backfill(context.Background(), repo, false)

	assert.Error(t, err)
}
