package model

import "errors"

// Error taxonomy shared by the store, the resolver and the gateways.
// Callers wrap these with context and test with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
)
