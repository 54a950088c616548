package usecase

import (
	"errors"
	"gestao_orcamentos/internal/usecase/interfaces"
)

var (
	ErrOrcamentoNotFound  = errors.New("orcamento not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidOrcamentoID = errors.New("invalid orcamento id")
)

// ErrOrcamentoNaoFinalizavel is returned when the items do not add up to the
// declared total or the budget is no longer open.
var ErrOrcamentoNaoFinalizavel error = &ValidationError{Message: msgNaoFinalizavel}

// ValidationError is a client-side check failure. Message is shown to the
// user as is, next to the form that triggered it. The backend runs the same
// checks; these only avoid a round trip.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// mapNotFound turns a gateway 404 into the domain sentinel.
func mapNotFound(err error, sentinel error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return sentinel
	}
	return err
}

// gatewayMessage extracts the backend message of err, or returns fallback.
func gatewayMessage(err error, fallback string) string {
	var gwErr *interfaces.GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}
