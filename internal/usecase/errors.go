package usecase

import (
	"errors"
	"fmt"

	"woorkins_payments/internal/domain/split"

	"github.com/shopspring/decimal"
)

var (
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrGatewayDisabled       = errors.New("payment gateway disabled")
	ErrProcessorRejected     = errors.New("payment processor rejected the payment")
	ErrProcessorUnknown      = errors.New("payment processor outcome unknown")
	ErrInvalidSplitInput     = split.ErrInvalidSplitInput
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrCreditingIncomplete   = errors.New("payment recorded but ledger not updated")
	ErrInvalidPaymentRequest = errors.New("invalid payment request")
	ErrPaymentRecordNotFound = errors.New("payment record not found")
)

// ProcessorRejectedError carries the processor's answer for a refused charge.
type ProcessorRejectedError struct {
	StatusCode int
	Body       string
}

func (e *ProcessorRejectedError) Error() string {
	return fmt.Sprintf("%s: status=%d body=%s", ErrProcessorRejected.Error(), e.StatusCode, e.Body)
}

func (e *ProcessorRejectedError) Unwrap() error {
	return ErrProcessorRejected
}

// CreditingIncompleteError reports a charge that went through on the
// processor but whose ledger effects were not (fully) written. Recorded tells
// whether the local payment record exists.
type CreditingIncompleteError struct {
	ProcessorPaymentID string
	Amount             decimal.Decimal
	Target             string
	Recorded           bool
	Err                error
}

func (e *CreditingIncompleteError) Error() string {
	return fmt.Sprintf("%s: processor_payment_id=%s amount=%s target=%s recorded=%t: %v",
		ErrCreditingIncomplete.Error(), e.ProcessorPaymentID, e.Amount.StringFixed(2), e.Target, e.Recorded, e.Err)
}

func (e *CreditingIncompleteError) Unwrap() []error {
	return []error{ErrCreditingIncomplete, e.Err}
}
