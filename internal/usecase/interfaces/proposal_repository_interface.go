package interfaces

import (
	"context"

	"woorkins_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IProposalRepository abstracts DynamoDB persistence for proposals.
// A zero Proposal means not found.
type IProposalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	UpdatePaymentSummary(ctx context.Context, id string, summary entities.ProposalPaymentSummary) error
}

// IProposalPaymentRepository persists ProposalPayment records.
//
// Upsert never downgrades a paid record to pending and never touches a
// record that was already credited; in both cases it returns the stored
// record unchanged.
type IProposalPaymentRepository interface {
	Upsert(ctx context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error)
	GetByProcessorPaymentID(ctx context.Context, processorPaymentID string) (entities.ProposalPayment, error)
}

// IFreelancerWalletRepository owns freelancer wallets.
//
// CreditPending atomically marks the payment record as credited and adds
// amount to the wallet's pending balance, creating the wallet when missing.
// It returns false, nil when the record was already credited or is not paid.
type IFreelancerWalletRepository interface {
	CreditPending(ctx context.Context, paymentRecordID, profileID string, amount decimal.Decimal) (bool, error)
	GetByProfileID(ctx context.Context, profileID string) (entities.FreelancerWallet, error)
}
