package usecase

import (
	"context"
	"strings"
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/domain/split"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProposalLedgerResult struct {
	Record          entities.ProposalPayment
	Split           split.Result
	Credited        bool
	AlreadyCredited bool
}

// ProposalLedger records proposal payments and credits the freelancer's
// pending balance. Every step is safe to replay for the same processor
// payment id.
type ProposalLedger struct {
	proposals         interfaces.IProposalRepository
	payments          interfaces.IProposalPaymentRepository
	wallets           interfaces.IFreelancerWalletRepository
	metrics           interfaces.IPaymentMetrics
	commissionPercent decimal.Decimal
	logger            *logrus.Logger
	nowFn             func() time.Time
}

func NewProposalLedger(
	proposals interfaces.IProposalRepository,
	payments interfaces.IProposalPaymentRepository,
	wallets interfaces.IFreelancerWalletRepository,
	metrics interfaces.IPaymentMetrics,
	commissionPercent decimal.Decimal,
	logger *logrus.Logger,
) *ProposalLedger {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ProposalLedger{
		proposals:         proposals,
		payments:          payments,
		wallets:           wallets,
		metrics:           metrics,
		commissionPercent: commissionPercent,
		logger:            logger,
		nowFn:             func() time.Time { return time.Now().UTC() },
	}
}

func (l *ProposalLedger) Load(ctx context.Context, proposalID string) (entities.Proposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	p, err := l.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" || p.FreelancerID == "" {
		l.logger.WithField("proposal_id", proposalID).Warn("[ledger][proposal] proposal not found")
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (l *ProposalLedger) Split(finalAmount, processorFeePercent decimal.Decimal) (split.Result, error) {
	return split.SplitWithFee(finalAmount, l.commissionPercent, processorFeePercent)
}

// Apply runs the ledger steps for a charge already accepted by the processor.
func (l *ProposalLedger) Apply(ctx context.Context, proposal entities.Proposal, in LedgerInput) (ProposalLedgerResult, error) {
	res, err := l.Split(in.FinalAmount, in.ProcessorFeePercent)
	if err != nil {
		return ProposalLedgerResult{}, err
	}

	log := l.logger.WithFields(logrus.Fields{
		"proposal_id":          proposal.ID,
		"processor_payment_id": in.Payment.ID,
		"processor_status":     in.Payment.Status,
		"final_amount":         in.FinalAmount.StringFixed(2),
		"freelancer_id":        proposal.FreelancerID,
	})
	incomplete := func(recorded bool, cause error) error {
		l.metrics.CreditingIncomplete(string(entities.TargetKindProposal))
		log.WithError(cause).WithField("recorded", recorded).Error("[ledger][proposal] crediting incomplete; reconciliation required")
		return &CreditingIncompleteError{
			ProcessorPaymentID: in.Payment.ID,
			Amount:             in.FinalAmount,
			Target:             entities.ProposalTarget{ProposalID: proposal.ID}.ExternalReference(""),
			Recorded:           recorded,
			Err:                cause,
		}
	}

	now := l.nowFn()
	status := entities.PaymentStatusFromProcessor(in.Payment.Status)
	record, err := l.payments.Upsert(ctx, entities.ProposalPayment{
		ID:                 entities.ProposalPaymentID(proposal.ID, in.Payment.ID),
		ProposalID:         proposal.ID,
		ProcessorPaymentID: in.Payment.ID,
		PayerProfileID:     in.PayerProfileID,
		Amount:             in.FinalAmount,
		OriginalAmount:     in.OriginalAmount,
		Status:             status,
		Method:             in.Method,
		ProcessorPayload:   in.Payment.Raw,
		PaidAt:             paidAt(status, now),
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return ProposalLedgerResult{}, incomplete(false, err)
	}
	out := ProposalLedgerResult{Record: record, Split: res}

	if record.Credited() {
		log.Info("[ledger][proposal] payment already credited; skipping")
		out.AlreadyCredited = true
		return out, nil
	}

	summary := entities.ProposalPaymentSummary{
		AcceptedAmount:     in.OriginalAmount,
		FreelancerAmount:   res.PayeeNetAmount,
		PlatformCommission: res.PlatformCommission,
		ProcessorFee:       res.ProcessorFee,
		PaymentStatus:      record.Status,
	}
	if err := l.proposals.UpdatePaymentSummary(ctx, proposal.ID, summary); err != nil {
		return out, incomplete(true, err)
	}

	if record.Status != entities.PaymentStatusPaid {
		log.Info("[ledger][proposal] payment not approved; wallet untouched")
		return out, nil
	}
	if !in.Payment.Approved() {
		// Stored as paid but the processor reports otherwise (refund, chargeback).
		log.Warn("[ledger][proposal] record paid but processor status is not approved; credit skipped, manual reconciliation required")
		return out, nil
	}

	credited, err := l.wallets.CreditPending(ctx, record.ID, proposal.FreelancerID, res.PayeeNetAmount)
	if err != nil {
		return out, incomplete(true, err)
	}
	if !credited {
		log.Info("[ledger][proposal] concurrent credit detected; skipping")
		out.AlreadyCredited = true
		return out, nil
	}

	l.metrics.LedgerCredited(string(entities.TargetKindProposal))
	log.WithField("payee_net_amount", res.PayeeNetAmount.StringFixed(2)).Info("[ledger][proposal] wallet credited")
	out.Credited = true
	out.Record.CreditedAt = &now
	return out, nil
}
