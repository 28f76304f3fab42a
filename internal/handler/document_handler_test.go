package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/handler"
	"invoicedesk/internal/service"
	"invoicedesk/mocks"
)

func newDocumentHandler() (*handler.DocumentHandler, *mocks.MockDocumentService) {
	mockSvc := new(mocks.MockDocumentService)
	return handler.NewDocumentHandler(mockSvc), mockSvc
}

func TestDocumentHandler_PDF_Inline(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("RenderPDF", mock.Anything, id).Return(&service.RenderedDocument{
		Filename:    "Invoice_INV-05-25-3.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.3"),
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/invoices/"+id.String()+"/pdf", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.PDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="Invoice_INV-05-25-3.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestDocumentHandler_PDF_Download(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("RenderPDF", mock.Anything, id).Return(&service.RenderedDocument{
		Filename: "a.pdf", ContentType: "application/pdf", Content: []byte("%PDF"),
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/invoices/"+id.String()+"/pdf?download=1", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.PDF(c)

	assert.Equal(t, `attachment; filename="a.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestDocumentHandler_PDF_NotFound(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("RenderPDF", mock.Anything, id).Return(nil, domain.ErrNotFound)

	c, w := newTestContext(http.MethodGet, "/api/invoices/"+id.String()+"/pdf", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.PDF(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_Archive(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("ArchivePDF", mock.Anything, id).Return(&domain.ArchivedDocument{
		InvoiceID: id, Key: "invoices/x.pdf", URL: "https://signed.example/x",
	}, nil)

	c, w := newTestContext(http.MethodPost, "/api/invoices/"+id.String()+"/pdf/archive", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Archive(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://signed.example/x"`)
}

func TestDocumentHandler_Archive_StorageDisabled(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("ArchivePDF", mock.Anything, id).Return(nil, domain.ErrStorageDisabled)

	c, w := newTestContext(http.MethodPost, "/api/invoices/"+id.String()+"/pdf/archive", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Archive(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "STORAGE_DISABLED", decodeError(t, w).Error.Code)
}

func TestDocumentHandler_Send(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("SendInvoice", mock.Anything, id, service.SendInvoiceInput{ToEmail: "accounts@acme.example"}).
		Return(&domain.ArchivedDocument{InvoiceID: id, URL: "u"}, nil)

	c, w := newTestContext(http.MethodPost, "/api/invoices/"+id.String()+"/send", []byte(`{"toEmail":"accounts@acme.example"}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDocumentHandler_Send_InvalidEmail(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()

	c, w := newTestContext(http.MethodPost, "/api/invoices/"+id.String()+"/send", []byte(`{"toEmail":"not-an-email"}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "SendInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_Send_MissingRecipient(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	id := uuid.New()
	mockSvc.On("SendInvoice", mock.Anything, id, service.SendInvoiceInput{}).Return(nil, domain.ErrMissingRecipient)

	c, w := newTestContext(http.MethodPost, "/api/invoices/"+id.String()+"/send", []byte(`{}`))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_RECIPIENT", decodeError(t, w).Error.Code)
}

func TestDocumentHandler_Export(t *testing.T) {
	h, mockSvc := newDocumentHandler()
	mockSvc.On("ExportWorkbook", mock.Anything).Return(&service.RenderedDocument{
		Filename:    "invoices_2025-05-14.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK"),
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/invoices/export", nil)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="invoices_2025-05-14.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}
