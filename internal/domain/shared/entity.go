package shared

import (
	"github.com/google/uuid"
)

// NewID generates the identifier for a freshly created entity.
// Identifiers are always server-assigned; callers never supply them.
func NewID() uuid.UUID {
	return uuid.New()
}
