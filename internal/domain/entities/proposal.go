package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Proposal is the marketplace agreement being paid. FreelancerID is the
// profile id of the payee.
//
// Storage model (DynamoDB):
//   - PK: id
type Proposal struct {
	ID           string
	ProjectID    string
	FreelancerID string
	Status       string

	AcceptedAmount     decimal.Decimal
	FreelancerAmount   decimal.Decimal
	PlatformCommission decimal.Decimal
	ProcessorFee       decimal.Decimal
	PaymentStatus      PaymentStatus
	UpdatedAt          time.Time
}

// ProposalPaymentSummary is the denormalized copy of a split kept on the
// proposal row. The payment record remains the source of truth.
type ProposalPaymentSummary struct {
	AcceptedAmount     decimal.Decimal
	FreelancerAmount   decimal.Decimal
	PlatformCommission decimal.Decimal
	ProcessorFee       decimal.Decimal
	PaymentStatus      PaymentStatus
}

// ProposalPayment is one processor payment made against a proposal.
//
// Storage model (DynamoDB):
//   - PK: id = <proposal_id>#<processor_payment_id>
//   - GSI (processor_payment_id-index): processor_payment_id
//
// CreditedAt is set in the same write that credits the freelancer wallet, so
// a paid record with a nil CreditedAt is a payment waiting to be credited.
type ProposalPayment struct {
	ID                 string
	ProposalID         string
	ProcessorPaymentID string
	PayerProfileID     string
	Amount             decimal.Decimal
	OriginalAmount     decimal.Decimal
	Status             PaymentStatus
	Method             PaymentMethod
	ProcessorPayload   json.RawMessage
	PaidAt             *time.Time
	CreditedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ProposalPaymentID(proposalID, processorPaymentID string) string {
	return proposalID + "#" + processorPaymentID
}

// OwnedBy reports whether profileID is a party of the payment: the payer, or
// the freelancer of the proposal it pays.
func (p ProposalPayment) OwnedBy(profileID, freelancerID string) bool {
	if profileID == "" {
		return false
	}
	return profileID == p.PayerProfileID || profileID == freelancerID
}

func (p ProposalPayment) Credited() bool {
	return p.Status == PaymentStatusPaid && p.CreditedAt != nil
}
