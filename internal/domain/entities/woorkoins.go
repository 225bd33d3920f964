package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const WoorkoinTransactionTypePurchase = "purchase"

// WoorkoinPurchase is the payment record of a platform-currency purchase,
// keyed by the processor payment id.
type WoorkoinPurchase struct {
	ID               string
	ProfileID        string
	Amount           int64
	Price            decimal.Decimal
	OriginalPrice    decimal.Decimal
	Method           PaymentMethod
	Status           PaymentStatus
	ProcessorPayload json.RawMessage
	PaidAt           *time.Time
	CreditedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p WoorkoinPurchase) Credited() bool {
	return p.Status == PaymentStatusPaid && p.CreditedAt != nil
}

type WoorkoinBalance struct {
	ProfileID string
	Balance   int64
	UpdatedAt time.Time
}

// WoorkoinTransaction is an immutable audit entry. One exists for every
// balance increase made by a purchase.
type WoorkoinTransaction struct {
	ID          string
	ProfileID   string
	Type        string
	Amount      int64
	Description string
	CreatedAt   time.Time
}

// PurchaseTransactionID is deterministic so a replayed credit cannot append
// a second entry for the same payment.
func PurchaseTransactionID(processorPaymentID string) string {
	return "purchase#" + processorPaymentID
}

func NewPurchaseTransaction(p WoorkoinPurchase, now time.Time) WoorkoinTransaction {
	return WoorkoinTransaction{
		ID:          PurchaseTransactionID(p.ID),
		ProfileID:   p.ProfileID,
		Type:        WoorkoinTransactionTypePurchase,
		Amount:      p.Amount,
		Description: fmt.Sprintf("Purchase of %d Woorkoins", p.Amount),
		CreatedAt:   now,
	}
}
