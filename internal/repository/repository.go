// internal/repository/repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// notFound translates gorm's record-not-found into the given domain error so
// handlers can distinguish 404s from upstream store failures.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return nil
}
