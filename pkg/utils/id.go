package utils

import "github.com/google/uuid"

// NewID returns a fresh opaque identity for a user record.
func NewID() string { return uuid.NewString() }
