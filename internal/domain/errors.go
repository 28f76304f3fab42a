package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("operator login is not configured")
	ErrInvalidPayment     = errors.New("payment amount must not be negative")
	ErrInvalidAmount      = errors.New("invoice amounts must not be negative")
	ErrInvalidLineItem    = errors.New("line item price must not be negative")
	ErrInvalidStatus      = errors.New("invalid invoice status")
	ErrEmptyUpdate        = errors.New("update must set status or paidAmount")
	ErrStorageDisabled    = errors.New("object storage is not configured")
	ErrUploadFailed       = errors.New("file upload to storage failed")
	ErrMissingRecipient   = errors.New("recipient email is required")
	ErrRenderFailed       = errors.New("document rendering failed")
)
