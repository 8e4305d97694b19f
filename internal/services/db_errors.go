package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKey detects unique-index violations across drivers. The partial
// unique indexes on subscriptions and session preferences surface here when
// two requests race past the application-level existence checks.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
