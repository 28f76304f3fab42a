package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/billing"
	"invoicedesk/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func statusPtr(s domain.InvoiceStatus) *domain.InvoiceStatus {
	return &s
}

func pending(total string) billing.PaymentState {
	return billing.PaymentState{
		Status:      domain.InvoiceStatusPending,
		PaidAmount:  decimal.Zero,
		TotalAmount: dec(total),
	}
}

func TestApplyUpdate_PartialThenPaid(t *testing.T) {
	state := pending("1000")

	state, err := billing.ApplyUpdate(state, billing.PaymentUpdate{PaidDelta: decPtr("400")})
	require.NoError(t, err)
	assert.True(t, dec("400").Equal(state.PaidAmount))
	assert.Equal(t, domain.InvoiceStatusPartial, state.Status)

	state, err = billing.ApplyUpdate(state, billing.PaymentUpdate{PaidDelta: decPtr("600")})
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(state.PaidAmount))
	assert.Equal(t, domain.InvoiceStatusPaid, state.Status)
}

func TestApplyUpdate_Delta(t *testing.T) {
	tests := []struct {
		name       string
		storedPaid string
		total      string
		delta      string
		wantPaid   string
		wantStatus domain.InvoiceStatus
	}{
		{"exact_settlement", "250", "1000", "750", "1000", domain.InvoiceStatusPaid},
		{"overpayment_kept", "900", "1000", "300", "1200", domain.InvoiceStatusPaid},
		{"still_partial", "100", "1000", "0.50", "100.50", domain.InvoiceStatusPartial},
		{"first_payment", "0", "1000", "1", "1", domain.InvoiceStatusPartial},
		{"zero_delta_on_unpaid_keeps_status", "0", "1000", "0", "0", domain.InvoiceStatusPartial},
		{"zero_total", "0", "0", "0", "0", domain.InvoiceStatusPaid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			current := billing.PaymentState{
				Status:      domain.InvoiceStatusPartial,
				PaidAmount:  dec(tc.storedPaid),
				TotalAmount: dec(tc.total),
			}
			got, err := billing.ApplyUpdate(current, billing.PaymentUpdate{PaidDelta: decPtr(tc.delta)})
			require.NoError(t, err)
			assert.True(t, dec(tc.wantPaid).Equal(got.PaidAmount), "paid = %s", got.PaidAmount)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.True(t, current.TotalAmount.Equal(got.TotalAmount))
		})
	}
}

func TestApplyUpdate_DeltaWinsOverRequestedStatus(t *testing.T) {
	got, err := billing.ApplyUpdate(pending("1000"), billing.PaymentUpdate{
		Status:    statusPtr(domain.InvoiceStatusPaid),
		PaidDelta: decPtr("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartial, got.Status)
	assert.True(t, dec("10").Equal(got.PaidAmount))
}

func TestApplyUpdate_ZeroResultUsesRequestedStatus(t *testing.T) {
	got, err := billing.ApplyUpdate(pending("1000"), billing.PaymentUpdate{
		Status:    statusPtr(domain.InvoiceStatusPartial),
		PaidDelta: decPtr("0"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartial, got.Status)
	assert.True(t, got.PaidAmount.IsZero())

	got, err = billing.ApplyUpdate(pending("1000"), billing.PaymentUpdate{PaidDelta: decPtr("0")})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPending, got.Status)
}

func TestApplyUpdate_DirectStatus(t *testing.T) {
	current := billing.PaymentState{
		Status:      domain.InvoiceStatusPartial,
		PaidAmount:  dec("300"),
		TotalAmount: dec("1000"),
	}

	t.Run("paid_settles_total", func(t *testing.T) {
		got, err := billing.ApplyUpdate(current, billing.PaymentUpdate{Status: statusPtr(domain.InvoiceStatusPaid)})
		require.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
		assert.True(t, dec("1000").Equal(got.PaidAmount))
	})

	t.Run("pending_resets_paid", func(t *testing.T) {
		got, err := billing.ApplyUpdate(current, billing.PaymentUpdate{Status: statusPtr(domain.InvoiceStatusPending)})
		require.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusPending, got.Status)
		assert.True(t, got.PaidAmount.IsZero())
	})

	t.Run("partial_keeps_paid", func(t *testing.T) {
		got, err := billing.ApplyUpdate(current, billing.PaymentUpdate{Status: statusPtr(domain.InvoiceStatusPartial)})
		require.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusPartial, got.Status)
		assert.True(t, dec("300").Equal(got.PaidAmount))
	})
}

func TestApplyUpdate_Rejections(t *testing.T) {
	current := pending("1000")

	_, err := billing.ApplyUpdate(current, billing.PaymentUpdate{})
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)

	_, err = billing.ApplyUpdate(current, billing.PaymentUpdate{PaidDelta: decPtr("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidPayment)

	_, err = billing.ApplyUpdate(current, billing.PaymentUpdate{Status: statusPtr("Refunded")})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, domain.InvoiceStatusPending, billing.DeriveStatus(dec("0"), dec("10")))
	assert.Equal(t, domain.InvoiceStatusPartial, billing.DeriveStatus(dec("9.99"), dec("10")))
	assert.Equal(t, domain.InvoiceStatusPaid, billing.DeriveStatus(dec("10"), dec("10")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, domain.InvoiceStatusPending, billing.InitialStatus("", dec("0"), dec("1000")))
	assert.Equal(t, domain.InvoiceStatusPartial, billing.InitialStatus("", dec("10"), dec("1000")))
	assert.Equal(t, domain.InvoiceStatusPaid, billing.InitialStatus(domain.InvoiceStatusPending, dec("1000"), dec("1000")))
	assert.Equal(t, domain.InvoiceStatusPaid, billing.InitialStatus(domain.InvoiceStatusPending, dec("0"), dec("0")))
	assert.Equal(t, domain.InvoiceStatusPaid, billing.InitialStatus("", dec("0"), dec("0")))
	assert.Equal(t, domain.InvoiceStatusPaid, billing.InitialStatus(domain.InvoiceStatusPartial, dec("1200"), dec("1000")))
	assert.Equal(t, domain.InvoiceStatusPaid, billing.InitialStatus(domain.InvoiceStatusPaid, dec("0"), dec("1000")))
}
