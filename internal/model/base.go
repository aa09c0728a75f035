package model

import "github.com/google/uuid"

// NewID returns a collection-scoped identifier such as "patient-4f2c…".
// The prefix only aids debugging; identity comparisons use the full string.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
