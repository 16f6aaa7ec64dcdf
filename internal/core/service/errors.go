package service

import "errors"

// Sentinel errors for the failure kinds the API distinguishes. Handlers
// match with errors.Is; services wrap these with context via fmt.Errorf.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrGateway      = errors.New("payment gateway failure")
	ErrStorage      = errors.New("storage failure")
)
