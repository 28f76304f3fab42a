package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/middleware"
)

// ErrorResponse is the envelope for every error response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 response with data as the bare JSON body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 response with data as the bare JSON body.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "invoice not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrAuthDisabled):
		return http.StatusNotFound, "AUTH_DISABLED", "operator login is not configured"
	case errors.Is(err, domain.ErrInvalidPayment):
		return http.StatusBadRequest, "INVALID_PAYMENT", "paidAmount must not be negative"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "INVALID_AMOUNT", "totalAmount and paidAmount must not be negative"
	case errors.Is(err, domain.ErrInvalidLineItem):
		return http.StatusBadRequest, "INVALID_LINE_ITEM", "line item price must not be negative"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "status must be one of Pending, Partial, Paid"
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, "EMPTY_UPDATE", "update must set status or paidAmount"
	case errors.Is(err, domain.ErrMissingRecipient):
		return http.StatusBadRequest, "MISSING_RECIPIENT", "toEmail is required"
	case errors.Is(err, domain.ErrStorageDisabled):
		return http.StatusServiceUnavailable, "STORAGE_DISABLED", "object storage is not configured"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrRenderFailed):
		return http.StatusInternalServerError, "RENDER_FAILED", "document could not be generated"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log := logger.WithRequestID(middleware.GetRequestID(c))
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("internal error")
	}
	RespondError(c, status, code, msg)
}

// parseIDParam reads the :id path parameter. It writes a 400 response and
// returns false when the value is not a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return uuid.Nil, false
	}
	return id, true
}
