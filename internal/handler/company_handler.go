package handler

import (
	"github.com/gin-gonic/gin"

	"invoicedesk/internal/config"
	"invoicedesk/internal/domain"
)

// CompanyHandler serves the issuing company's default details.
type CompanyHandler struct {
	defaults domain.CompanyDetails
}

// NewCompanyHandler creates a new CompanyHandler from configuration.
func NewCompanyHandler(cfg config.CompanyConfig) *CompanyHandler {
	return &CompanyHandler{defaults: domain.CompanyDetails{
		Name:          cfg.Name,
		Address:       cfg.Address,
		Email:         cfg.Email,
		PANNumber:     cfg.PANNumber,
		AccountNumber: cfg.AccountNumber,
		AccountName:   cfg.AccountName,
		IFSCCode:      cfg.IFSCCode,
		Branch:        cfg.Branch,
	}}
}

// Defaults handles GET /api/company
// @Summary Default company details
// @Description Values the invoice form is prefilled with.
// @Tags company
// @Produce json
// @Success 200 {object} domain.CompanyDetails
// @Security BearerAuth
// @Router /company [get]
func (h *CompanyHandler) Defaults(c *gin.Context) {
	RespondOK(c, h.defaults)
}
