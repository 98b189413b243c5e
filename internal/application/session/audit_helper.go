package session

import (
	"errors"

	"github.com/baechuer/grandveggie/internal/domain"
)

// domainCode extracts a stable reason for the audit trail.
func domainCode(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "internal_error"
}
