// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Merchant-related errors
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrInvalidStatus    = errors.New("invalid merchant status")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// User-related errors
	ErrUserNotFound = errors.New("user not found")

	// Upload-related errors
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
