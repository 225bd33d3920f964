package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TargetKind string

const (
	TargetKindNone     TargetKind = "none"
	TargetKindProposal TargetKind = "proposal"
	TargetKindWoorkoin TargetKind = "woorkoins"
)

// PaymentTarget is what a payment pays for. It is either a ProposalTarget or
// a WoorkoinTarget; a nil target is a plain charge that touches no ledger.
type PaymentTarget interface {
	Kind() TargetKind
	ExternalReference(profileID string) string
	isPaymentTarget()
}

// ProposalTarget pays a marketplace proposal; the payee is the proposal's
// freelancer.
type ProposalTarget struct {
	ProposalID string
}

func (ProposalTarget) Kind() TargetKind { return TargetKindProposal }

func (t ProposalTarget) ExternalReference(string) string {
	return fmt.Sprintf("proposal:%s", t.ProposalID)
}

func (ProposalTarget) isPaymentTarget() {}

// WoorkoinTarget buys Amount units of platform currency for Price.
type WoorkoinTarget struct {
	Amount int64
	Price  decimal.Decimal
}

func (WoorkoinTarget) Kind() TargetKind { return TargetKindWoorkoin }

func (WoorkoinTarget) ExternalReference(profileID string) string {
	return fmt.Sprintf("woorkoins:%s", profileID)
}

func (WoorkoinTarget) isPaymentTarget() {}

func KindOf(t PaymentTarget) TargetKind {
	if t == nil {
		return TargetKindNone
	}
	return t.Kind()
}
