package usecase

import (
	"time"

	"woorkins_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LedgerInput is what both ledger paths need to know about a charge. It is
// built from a fresh submission or from a reconciliation read.
type LedgerInput struct {
	Payment             entities.ProcessorPayment
	PayerProfileID      string
	Method              entities.PaymentMethod
	OriginalAmount      decimal.Decimal
	FinalAmount         decimal.Decimal
	ProcessorFeePercent decimal.Decimal
}

func ledgerInputFrom(p InitiatedPayment, payerProfileID string) LedgerInput {
	return LedgerInput{
		Payment:             p.Payment,
		PayerProfileID:      payerProfileID,
		Method:              p.Method,
		OriginalAmount:      p.OriginalAmount,
		FinalAmount:         p.FinalAmount,
		ProcessorFeePercent: p.ProcessorFeePercent,
	}
}

func paidAt(status entities.PaymentStatus, now time.Time) *time.Time {
	if status != entities.PaymentStatusPaid {
		return nil
	}
	return &now
}

type nopMetrics struct{}

func (nopMetrics) PaymentCreated(string, string, string) {}
func (nopMetrics) ProcessorCall(string, string, time.Duration) {}
func (nopMetrics) LedgerCredited(string) {}
func (nopMetrics) CreditingIncomplete(string) {}
