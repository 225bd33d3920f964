package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the way the payer settles the charge.
type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodPix || m == PaymentMethodCard
}

func ParsePaymentMethod(v string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(v)))
	return m, m.Valid()
}

// Processor statuses observed by this service. Anything else is a terminal
// failure from our point of view (rejected, cancelled, refunded...).
const (
	ProcessorStatusApproved = "approved"
	ProcessorStatusPending  = "pending"
)

// PaymentStatus is the status of a locally persisted payment record.
//
// Only two states exist: a record is "paid" once the processor reports the
// charge as approved, otherwise it stays "pending" so a later reconciliation
// can promote it.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func PaymentStatusFromProcessor(processorStatus string) PaymentStatus {
	if processorStatus == ProcessorStatusApproved {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

// Payer identifies who is paying. Document is the national tax id (CPF).
type Payer struct {
	Name     string
	Email    string
	Document string
}

// CardDetails carries the tokenized card. A PAN never reaches this service.
type CardDetails struct {
	Token           string
	PaymentMethodID string
	Installments    int
}

// ChargeRequest is the normalized charge submitted to the payment processor.
type ChargeRequest struct {
	Method            PaymentMethod
	Amount            decimal.Decimal
	Description       string
	Payer             Payer
	Card              *CardDetails
	ExternalReference string
	NotificationURL   string
	ExpiresAt         *time.Time
	IdempotencyKey    string
}

// ProcessorPayment is the cached copy of the processor's payment record.
type ProcessorPayment struct {
	ID           string
	Status       string
	StatusDetail string

	// PIX only.
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
	ExpiresAt    *time.Time

	Raw json.RawMessage
}

func (p ProcessorPayment) Approved() bool {
	return p.Status == ProcessorStatusApproved
}
