package usecase

import (
	"context"
	"fmt"
	"strings"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PaymentInput is a validated-at-the-edge purchase intent. Target is nil, a
// ProposalTarget or a WoorkoinTarget.
type PaymentInput struct {
	Method      entities.PaymentMethod
	Amount      decimal.Decimal
	Description string
	Payer       entities.Payer
	Card        *entities.CardDetails
	Target      entities.PaymentTarget
}

type PaymentResult struct {
	InitiatedPayment
	Target    entities.TargetKind
	Proposal  *ProposalLedgerResult
	Woorkoins *WoorkoinLedgerResult
}

type ReconcileResult struct {
	Payment         entities.ProcessorPayment
	Target          entities.TargetKind
	Status          entities.PaymentStatus
	Credited        bool
	AlreadyCredited bool
}

// IPaymentUseCase charges a payer and applies the ledger effects of the
// charge.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, account entities.Account, in PaymentInput) (PaymentResult, error)
	Reconcile(ctx context.Context, account entities.Account, processorPaymentID string) (ReconcileResult, error)
}

type PaymentUseCase struct {
	initiator        *PaymentInitiator
	proposalLedger   *ProposalLedger
	woorkoinLedger   *WoorkoinLedger
	proposalPayments interfaces.IProposalPaymentRepository
	purchases        interfaces.IWoorkoinPurchaseRepository
	metrics          interfaces.IPaymentMetrics
	logger           *logrus.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	initiator *PaymentInitiator,
	proposalLedger *ProposalLedger,
	woorkoinLedger *WoorkoinLedger,
	proposalPayments interfaces.IProposalPaymentRepository,
	purchases interfaces.IWoorkoinPurchaseRepository,
	metrics interfaces.IPaymentMetrics,
	logger *logrus.Logger,
) *PaymentUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &PaymentUseCase{
		initiator:        initiator,
		proposalLedger:   proposalLedger,
		woorkoinLedger:   woorkoinLedger,
		proposalPayments: proposalPayments,
		purchases:        purchases,
		metrics:          metrics,
		logger:           logger,
	}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, account entities.Account, in PaymentInput) (PaymentResult, error) {
	in, gross, err := normalizePaymentInput(account, in)
	if err != nil {
		return PaymentResult{}, err
	}
	kind := entities.KindOf(in.Target)
	log := u.logger.WithFields(logrus.Fields{
		"profile_id":   account.ProfileID,
		"method":       in.Method,
		"gross_amount": gross.StringFixed(2),
		"target":       kind,
	})
	log.Info("[payment][usecase] create start")

	// Lookups and validation happen before the charge so a failure here has
	// no side effects.
	var proposal entities.Proposal
	if t, ok := in.Target.(entities.ProposalTarget); ok {
		if proposal, err = u.proposalLedger.Load(ctx, t.ProposalID); err != nil {
			return PaymentResult{}, err
		}
	}

	quote, err := u.initiator.Quote(ctx, in.Method, gross)
	if err != nil {
		return PaymentResult{}, err
	}
	if kind == entities.TargetKindProposal {
		if _, err := u.proposalLedger.Split(quote.FinalAmount, quote.ProcessorFeePercent); err != nil {
			log.WithError(err).Warn("[payment][usecase] split rejected")
			return PaymentResult{}, err
		}
	}

	ref := ""
	if in.Target != nil {
		ref = in.Target.ExternalReference(account.ProfileID)
	}
	initiated, err := u.initiator.Submit(ctx, ChargeIntent{
		Quote:             quote,
		Description:       in.Description,
		Payer:             in.Payer,
		Card:              in.Card,
		ExternalReference: ref,
	})
	if err != nil {
		return PaymentResult{}, err
	}
	u.metrics.PaymentCreated(string(in.Method), string(kind), initiated.Payment.Status)

	out := PaymentResult{InitiatedPayment: initiated, Target: kind}
	switch t := in.Target.(type) {
	case entities.ProposalTarget:
		res, err := u.proposalLedger.Apply(ctx, proposal, ledgerInputFrom(initiated, account.ProfileID))
		if err != nil {
			return PaymentResult{}, err
		}
		out.Proposal = &res
	case entities.WoorkoinTarget:
		res, err := u.woorkoinLedger.Apply(ctx, account.ProfileID, t, ledgerInputFrom(initiated, account.ProfileID))
		if err != nil {
			return PaymentResult{}, err
		}
		out.Woorkoins = &res
	}

	log.WithFields(logrus.Fields{
		"processor_payment_id": initiated.Payment.ID,
		"processor_status":     initiated.Payment.Status,
		"final_amount":         initiated.FinalAmount.StringFixed(2),
	}).Info("[payment][usecase] create success")
	return out, nil
}

// Reconcile re-reads a payment from the processor and replays the ledger
// steps for it. Replaying an already credited payment changes nothing. Only
// the payer or the paid freelancer may reconcile; anyone else gets
// ErrPaymentRecordNotFound.
func (u *PaymentUseCase) Reconcile(ctx context.Context, account entities.Account, processorPaymentID string) (ReconcileResult, error) {
	processorPaymentID = strings.TrimSpace(processorPaymentID)
	if processorPaymentID == "" {
		return ReconcileResult{}, fmt.Errorf("%w: payment id is required", ErrInvalidPaymentRequest)
	}
	log := u.logger.WithFields(logrus.Fields{
		"processor_payment_id": processorPaymentID,
		"requested_by":         account.ProfileID,
	})
	log.Info("[payment][usecase] reconcile start")

	record, err := u.proposalPayments.GetByProcessorPaymentID(ctx, processorPaymentID)
	if err != nil {
		return ReconcileResult{}, err
	}
	var (
		proposal entities.Proposal
		purchase entities.WoorkoinPurchase
	)
	if record.ID != "" {
		if proposal, err = u.proposalLedger.Load(ctx, record.ProposalID); err != nil {
			return ReconcileResult{}, err
		}
		if !record.OwnedBy(account.ProfileID, proposal.FreelancerID) {
			log.Warn("[payment][usecase] reconcile: caller is not a party of the payment")
			return ReconcileResult{}, ErrPaymentRecordNotFound
		}
	} else {
		if purchase, err = u.purchases.GetByID(ctx, processorPaymentID); err != nil {
			return ReconcileResult{}, err
		}
		if purchase.ID == "" {
			log.Warn("[payment][usecase] reconcile: no local record")
			return ReconcileResult{}, ErrPaymentRecordNotFound
		}
		if account.ProfileID == "" || purchase.ProfileID != account.ProfileID {
			log.Warn("[payment][usecase] reconcile: caller does not own the purchase")
			return ReconcileResult{}, ErrPaymentRecordNotFound
		}
	}

	cfg, err := u.initiator.GatewayConfig(ctx)
	if err != nil {
		return ReconcileResult{}, err
	}
	p, err := u.initiator.Fetch(ctx, processorPaymentID)
	if err != nil {
		return ReconcileResult{}, err
	}
	out := ReconcileResult{Payment: p}

	if record.ID != "" {
		res, err := u.proposalLedger.Apply(ctx, proposal, LedgerInput{
			Payment:             p,
			PayerProfileID:      record.PayerProfileID,
			Method:              record.Method,
			OriginalAmount:      record.OriginalAmount,
			FinalAmount:         record.Amount,
			ProcessorFeePercent: cfg.FeePercent(record.Method),
		})
		if err != nil {
			return ReconcileResult{}, err
		}
		out.Target = entities.TargetKindProposal
		out.Status = res.Record.Status
		out.Credited = res.Credited
		out.AlreadyCredited = res.AlreadyCredited
	} else {
		target := entities.WoorkoinTarget{Amount: purchase.Amount, Price: purchase.OriginalPrice}
		res, err := u.woorkoinLedger.Apply(ctx, purchase.ProfileID, target, LedgerInput{
			Payment:             p,
			Method:              purchase.Method,
			OriginalAmount:      purchase.OriginalPrice,
			FinalAmount:         purchase.Price,
			ProcessorFeePercent: cfg.FeePercent(purchase.Method),
		})
		if err != nil {
			return ReconcileResult{}, err
		}
		out.Target = entities.TargetKindWoorkoin
		out.Status = res.Purchase.Status
		out.Credited = res.Credited
		out.AlreadyCredited = res.AlreadyCredited
	}

	log.WithFields(logrus.Fields{
		"processor_status": p.Status,
		"status":           out.Status,
		"credited":         out.Credited,
	}).Info("[payment][usecase] reconcile done")
	return out, nil
}

// normalizePaymentInput validates the input, fills payer defaults from the
// account and returns the gross amount to charge.
func normalizePaymentInput(account entities.Account, in PaymentInput) (PaymentInput, decimal.Decimal, error) {
	invalid := func(reason string) (PaymentInput, decimal.Decimal, error) {
		return PaymentInput{}, decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidPaymentRequest, reason)
	}

	if !in.Method.Valid() {
		return invalid("method must be pix or card")
	}

	gross := in.Amount
	switch t := in.Target.(type) {
	case nil:
	case entities.ProposalTarget:
		if strings.TrimSpace(t.ProposalID) == "" {
			return invalid("proposal_id is empty")
		}
		in.Target = entities.ProposalTarget{ProposalID: strings.TrimSpace(t.ProposalID)}
		if in.Description == "" {
			in.Description = fmt.Sprintf("Proposal %s", strings.TrimSpace(t.ProposalID))
		}
	case entities.WoorkoinTarget:
		if t.Amount <= 0 || !t.Price.IsPositive() {
			return invalid("woorkoins_amount and woorkoins_price must be positive")
		}
		gross = t.Price
		if in.Description == "" {
			in.Description = fmt.Sprintf("%d Woorkoins", t.Amount)
		}
	default:
		return invalid("unknown payment target")
	}
	if !gross.IsPositive() {
		return invalid("amount must be positive")
	}

	in.Payer.Email = strings.TrimSpace(in.Payer.Email)
	if in.Payer.Email == "" {
		in.Payer.Email = account.Email
	}
	if strings.TrimSpace(in.Payer.Name) == "" {
		in.Payer.Name = account.FullName
	}
	in.Payer.Document = onlyDigits(in.Payer.Document)
	if in.Payer.Email == "" {
		return invalid("customer email is required")
	}

	if in.Method == entities.PaymentMethodCard {
		if in.Card == nil || strings.TrimSpace(in.Card.Token) == "" {
			return invalid("card token is required")
		}
		card := *in.Card
		if card.Installments <= 0 {
			card.Installments = 1
		}
		in.Card = &card
	} else {
		in.Card = nil
	}
	if in.Description == "" {
		in.Description = "Woorkins payment"
	}
	return in, gross, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
