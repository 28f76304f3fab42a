package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicedesk/internal/config"
	"invoicedesk/internal/domain"
	"invoicedesk/internal/handler"
	"invoicedesk/internal/router"
	"invoicedesk/internal/service"
	"invoicedesk/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type routerDeps struct {
	auth     *mocks.MockAuthService
	invoice  *mocks.MockInvoiceService
	document *mocks.MockDocumentService
}

func newRouter(authEnabled bool) (*gin.Engine, *routerDeps) {
	d := &routerDeps{
		auth:     new(mocks.MockAuthService),
		invoice:  new(mocks.MockInvoiceService),
		document: new(mocks.MockDocumentService),
	}
	d.auth.On("Enabled").Return(authEnabled)

	r := router.Setup(nil, d.auth, router.Handlers{
		Auth:     handler.NewAuthHandler(d.auth),
		Invoice:  handler.NewInvoiceHandler(d.invoice),
		Document: handler.NewDocumentHandler(d.document),
		Company:  handler.NewCompanyHandler(config.CompanyConfig{Name: "Studio Nine"}),
		Health:   handler.NewHealthHandler(okPinger{}),
	})
	return r, d
}

func serve(r *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_StaticRoutesWinOverID(t *testing.T) {
	r, d := newRouter(false)
	d.invoice.On("NextNumber", mock.Anything).Return("INV-05-25-1", nil)
	d.invoice.On("Summary", mock.Anything).Return(&domain.InvoiceSummary{}, nil)
	d.document.On("ExportWorkbook", mock.Anything).Return(&service.RenderedDocument{
		Filename: "invoices.xlsx", ContentType: "application/octet-stream", Content: []byte("PK"),
	}, nil)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/invoices/next-number", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/invoices/stats", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/invoices/export", nil).Code)

	d.invoice.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	d.invoice.AssertExpectations(t)
	d.document.AssertExpectations(t)
}

func TestRouter_InvoiceByID(t *testing.T) {
	r, d := newRouter(false)
	id := uuid.New()
	d.invoice.On("GetByID", mock.Anything, id).Return(&domain.Invoice{ID: id}, nil)

	w := serve(r, http.MethodGet, "/api/invoices/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_AuthEnforcedWhenEnabled(t *testing.T) {
	r, d := newRouter(true)

	w := serve(r, http.MethodGet, "/api/invoices", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	d.auth.On("ValidateToken", "good").Return(&service.Claims{Role: domain.RoleOperator}, nil)
	d.invoice.On("List", mock.Anything).Return([]domain.Invoice{}, nil)

	w = serve(r, http.MethodGet, "/api/invoices", http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_HealthIsPublic(t *testing.T) {
	r, _ := newRouter(true)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/readyz", nil).Code)
}

func TestRouter_CompanyDefaults(t *testing.T) {
	r, _ := newRouter(false)

	w := serve(r, http.MethodGet, "/api/company", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Studio Nine"}`, w.Body.String())
}
