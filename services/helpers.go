package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKeyErr detects a storage-layer uniqueness violation. The unique
// index is the source of truth for email/category/tag names; the services'
// pre-checks only produce friendlier errors for the common case.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func isNotFoundErr(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
