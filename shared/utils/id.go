package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewId returns prefix followed by the dash-free form of a random uuid.
func NewId(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
