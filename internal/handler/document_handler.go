package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicedesk/internal/service"
)

// DocumentHandler serves generated invoice documents.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// PDF handles GET /api/invoices/:id/pdf
// @Summary Download the invoice PDF
// @Description Rendered on request. Add ?download=1 for an attachment instead of inline display.
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Invoice ID" format(uuid)
// @Param download query bool false "Serve as attachment"
// @Success 200 {file} file "PDF document"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	doc, err := h.documentService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	disposition := "inline"
	if c.Query("download") == "1" || c.Query("download") == "true" {
		disposition = "attachment"
	}
	sendDocument(c, doc, disposition)
}

// Archive handles POST /api/invoices/:id/pdf/archive
// @Summary Archive the invoice PDF to object storage
// @Description Uploads a freshly rendered PDF and returns a time-limited download link.
// @Tags documents
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Success 201 {object} domain.ArchivedDocument
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Security BearerAuth
// @Router /invoices/{id}/pdf/archive [post]
func (h *DocumentHandler) Archive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	archived, err := h.documentService.ArchivePDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, archived)
}

// Send handles POST /api/invoices/:id/send
// @Summary Email the invoice to the client
// @Description Archives the PDF and emails the client a link to it together with the amount due.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Param request body service.SendInvoiceInput true "Recipient"
// @Success 200 {object} domain.ArchivedDocument
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (h *DocumentHandler) Send(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input service.SendInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	archived, err := h.documentService.SendInvoice(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, archived)
}

// Export handles GET /api/invoices/export
// @Summary Export all invoices as XLSX
// @Tags documents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/export [get]
func (h *DocumentHandler) Export(c *gin.Context) {
	doc, err := h.documentService.ExportWorkbook(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	sendDocument(c, doc, "attachment")
}

func sendDocument(c *gin.Context, doc *service.RenderedDocument, disposition string) {
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
