package usecase

import (
	"context"
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type WoorkoinLedgerResult struct {
	Purchase        entities.WoorkoinPurchase
	Credited        bool
	AlreadyCredited bool
}

// WoorkoinLedger records platform-currency purchases and credits balances.
type WoorkoinLedger struct {
	purchases interfaces.IWoorkoinPurchaseRepository
	ledger    interfaces.IWoorkoinLedgerRepository
	metrics   interfaces.IPaymentMetrics
	logger    *logrus.Logger
	nowFn     func() time.Time
}

func NewWoorkoinLedger(purchases interfaces.IWoorkoinPurchaseRepository, ledger interfaces.IWoorkoinLedgerRepository, metrics interfaces.IPaymentMetrics, logger *logrus.Logger) *WoorkoinLedger {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &WoorkoinLedger{
		purchases: purchases,
		ledger:    ledger,
		metrics:   metrics,
		logger:    logger,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

func (l *WoorkoinLedger) Apply(ctx context.Context, profileID string, target entities.WoorkoinTarget, in LedgerInput) (WoorkoinLedgerResult, error) {
	log := l.logger.WithFields(logrus.Fields{
		"profile_id":           profileID,
		"processor_payment_id": in.Payment.ID,
		"processor_status":     in.Payment.Status,
		"woorkoins_amount":     target.Amount,
		"final_amount":         in.FinalAmount.StringFixed(2),
	})
	incomplete := func(recorded bool, cause error) error {
		l.metrics.CreditingIncomplete(string(entities.TargetKindWoorkoin))
		log.WithError(cause).WithField("recorded", recorded).Error("[ledger][woorkoins] crediting incomplete; reconciliation required")
		return &CreditingIncompleteError{
			ProcessorPaymentID: in.Payment.ID,
			Amount:             in.FinalAmount,
			Target:             target.ExternalReference(profileID),
			Recorded:           recorded,
			Err:                cause,
		}
	}

	now := l.nowFn()
	status := entities.PaymentStatusFromProcessor(in.Payment.Status)
	purchase, err := l.purchases.Upsert(ctx, entities.WoorkoinPurchase{
		ID:               in.Payment.ID,
		ProfileID:        profileID,
		Amount:           target.Amount,
		Price:            in.FinalAmount,
		OriginalPrice:    in.OriginalAmount,
		Method:           in.Method,
		Status:           status,
		ProcessorPayload: in.Payment.Raw,
		PaidAt:           paidAt(status, now),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return WoorkoinLedgerResult{}, incomplete(false, err)
	}
	out := WoorkoinLedgerResult{Purchase: purchase}

	if purchase.Credited() {
		log.Info("[ledger][woorkoins] purchase already credited; skipping")
		out.AlreadyCredited = true
		return out, nil
	}
	if purchase.Status != entities.PaymentStatusPaid {
		log.Info("[ledger][woorkoins] payment not approved; balance untouched")
		return out, nil
	}
	if !in.Payment.Approved() {
		log.Warn("[ledger][woorkoins] purchase paid but processor status is not approved; credit skipped, manual reconciliation required")
		return out, nil
	}

	entry := entities.NewPurchaseTransaction(purchase, now)
	credited, err := l.ledger.CreditPurchase(ctx, purchase, entry)
	if err != nil {
		return out, incomplete(true, err)
	}
	if !credited {
		log.Info("[ledger][woorkoins] concurrent credit detected; skipping")
		out.AlreadyCredited = true
		return out, nil
	}

	l.metrics.LedgerCredited(string(entities.TargetKindWoorkoin))
	log.Info("[ledger][woorkoins] balance credited")
	out.Credited = true
	out.Purchase.CreditedAt = &now
	return out, nil
}
