package domain

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPartial InvoiceStatus = "Partial"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}

// AllInvoiceStatuses lists statuses in dashboard display order.
var AllInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusPending,
	InvoiceStatusPartial,
	InvoiceStatusPaid,
}

// UserRole identifies what a token holder may do.
type UserRole string

const (
	RoleOperator UserRole = "operator"
)
