package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicedesk/internal/config"
	"invoicedesk/internal/handler"
)

func TestCompanyHandler_Defaults(t *testing.T) {
	h := handler.NewCompanyHandler(config.CompanyConfig{
		Name:          "Studio Nine",
		PANNumber:     "ABCDE1234F",
		AccountNumber: "001122334455",
		IFSCCode:      "HDFC0001234",
		Phone:         "+91 98765 43210",
	})

	c, w := newTestContext(http.MethodGet, "/api/company", nil)
	h.Defaults(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "Studio Nine",
		"panNumber": "ABCDE1234F",
		"accountNumber": "001122334455",
		"ifscCode": "HDFC0001234"
	}`, w.Body.String())
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(fakePinger{})

	c, w := newTestContext(http.MethodGet, "/healthz", nil)
	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_Readiness(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/readyz", nil)
	handler.NewHealthHandler(fakePinger{}).Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/readyz", nil)
	handler.NewHealthHandler(fakePinger{err: errors.New("refused")}).Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
