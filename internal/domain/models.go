package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard client does arithmetic on amounts, so they travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Invoice is a single stored invoice row.
type Invoice struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber  string          `db:"invoice_number" json:"invoiceNumber"`
	Date           string          `db:"date" json:"date"`
	ClientName     string          `db:"client_name" json:"clientName"`
	ClientAddress  string          `db:"client_address" json:"clientAddress"`
	CompanyDetails CompanyDetails  `db:"company_details" json:"companyDetails"`
	Status         InvoiceStatus   `db:"status" json:"status"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"totalAmount" swaggertype:"number"`
	PaidAmount     decimal.Decimal `db:"paid_amount" json:"paidAmount" swaggertype:"number"`
	Items          LineItems       `db:"items" json:"items"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// Balance returns the amount still owed, never below zero.
func (inv *Invoice) Balance() decimal.Decimal {
	remaining := inv.TotalAmount.Sub(inv.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// CompanyDetails holds the issuing company's identity and bank details as printed
// on the invoice, plus the custom line item columns active for this invoice.
type CompanyDetails struct {
	Name          string   `json:"name,omitempty"`
	Address       string   `json:"address,omitempty"`
	Email         string   `json:"email,omitempty"`
	PAN           string   `json:"pan,omitempty"`
	PANNumber     string   `json:"panNumber,omitempty"`
	AccountNumber string   `json:"accountNumber,omitempty"`
	AccountName   string   `json:"accountName,omitempty"`
	IFSCCode      string   `json:"ifscCode,omitempty"`
	Branch        string   `json:"branch,omitempty"`
	BankDetails   string   `json:"bankDetails,omitempty"`
	CustomColumns []string `json:"customColumns,omitempty"`
}

// InvoiceSummary is the dashboard rollup over all invoices.
type InvoiceSummary struct {
	TotalInvoices int                   `json:"totalInvoices"`
	TotalBilled   decimal.Decimal       `json:"totalBilled" swaggertype:"number"`
	PaidAmount    decimal.Decimal       `json:"paidAmount" swaggertype:"number"`
	PendingAmount decimal.Decimal       `json:"pendingAmount" swaggertype:"number"`
	CountByStatus map[InvoiceStatus]int `json:"countByStatus"`
}

// ArchivedDocument points at a rendered invoice PDF kept in object storage.
type ArchivedDocument struct {
	InvoiceID uuid.UUID `json:"invoiceId"`
	Bucket    string    `json:"bucket"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
