package interfaces

import (
	"context"
	"errors"
	"fmt"

	"woorkins_payments/internal/domain/entities"
)

// Errors a payment gateway adapter reports. Anything else coming out of a
// gateway means the adapter itself is misconfigured.
var (
	// ErrProcessorTimeout means the processor call did not finish in time;
	// the charge may or may not exist on the processor side.
	ErrProcessorTimeout = errors.New("payment processor timeout")
	// ErrProcessorUnavailable means the call was not attempted.
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
)

// ProcessorError is a non-success HTTP outcome returned by the processor.
type ProcessorError struct {
	StatusCode int
	Body       string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor returned status %d: %s", e.StatusCode, e.Body)
}

// IPaymentGateway abstracts external payment processors (e.g. Mercado Pago).
//
// CreatePayment must send req.IdempotencyKey as the processor idempotency key.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.ChargeRequest) (entities.ProcessorPayment, error)
	GetPayment(ctx context.Context, processorPaymentID string) (entities.ProcessorPayment, error)
}
