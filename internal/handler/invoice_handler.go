package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicedesk/internal/service"
)

// NextNumberResponse is the body of GET /invoices/next-number.
type NextNumberResponse struct {
	NextInvoiceNumber string `json:"nextInvoiceNumber" example:"INV-05-25-3"`
}

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /api/invoices
// @Summary List invoices
// @Description All invoices, newest first.
// @Tags invoices
// @Produce json
// @Success 200 {array} domain.Invoice
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// NextNumber handles GET /api/invoices/next-number
// @Summary Preview the next invoice number
// @Description Number the next created invoice will get in the current month. Not reserved.
// @Tags invoices
// @Produce json
// @Success 200 {object} NextNumberResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/next-number [get]
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	number, err := h.invoiceService.NextNumber(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, NextNumberResponse{NextInvoiceNumber: number})
}

// Stats handles GET /api/invoices/stats
// @Summary Dashboard totals
// @Description Paid and pending amounts; partially paid invoices are split between the two.
// @Tags invoices
// @Produce json
// @Success 200 {object} domain.InvoiceSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/stats [get]
func (h *InvoiceHandler) Stats(c *gin.Context) {
	summary, err := h.invoiceService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// GetByID handles GET /api/invoices/:id
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// Create handles POST /api/invoices
// @Summary Create an invoice
// @Description Allocates the next number for the current month. A missing totalAmount is the sum of item prices; status is derived when omitted and forced to Paid when paidAmount covers the total.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.CreateInvoiceInput true "Invoice"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// Update handles PUT /api/invoices/:id
// @Summary Record a payment or change status
// @Description paidAmount is added to the stored paid amount and the status follows from the result. With status only, Paid settles the total, Pending clears payments and Partial keeps them.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Param request body service.UpdateInvoiceInput true "Payment update"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.UpdatePayment(c.Request.Context(), id, &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}
