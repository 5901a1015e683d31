package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrInstrumentNotFound     = errors.New("instrument_not_found")
	ErrOrderNotFound          = errors.New("order_not_found")
	ErrTradeNotFound          = errors.New("trade_not_found")
	ErrPositionNotFound       = errors.New("position_not_found")
	ErrInvalidStateTransition = errors.New("invalid_state_transition")
	ErrInsufficientHoldings   = errors.New("insufficient_holdings")
	ErrTradeExecution         = errors.New("trade_execution_failed")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
