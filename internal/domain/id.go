package domain

import "github.com/google/uuid"

// NewID returns a prefixed entity ID ("ch_", "jr_", "up_", ...).
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
