// Package split computes how a paid amount is divided between the platform,
// the payment processor and the payee.
//
// All amounts are rounded half-up to the currency minor unit (2 places). The
// payee net amount is computed last as the residual, so the three parts always
// add up to the input exactly.
package split

import (
	"errors"

	"github.com/shopspring/decimal"
)

const MinorUnitPlaces = 2

var ErrInvalidSplitInput = errors.New("invalid split input")

var hundred = decimal.NewFromInt(100)

type Result struct {
	PlatformCommission decimal.Decimal
	ProcessorFee       decimal.Decimal
	PayeeNetAmount     decimal.Decimal
}

func (r Result) Total() decimal.Decimal {
	return r.PlatformCommission.Add(r.ProcessorFee).Add(r.PayeeNetAmount)
}

// Split divides finalAmount with no processor fee.
func Split(finalAmount, platformCommissionPercent decimal.Decimal) (Result, error) {
	return SplitWithFee(finalAmount, platformCommissionPercent, decimal.Zero)
}

// SplitWithFee divides finalAmount into commission, processor fee and payee
// net. A negative payee net is an error, never a clamp to zero.
func SplitWithFee(finalAmount, platformCommissionPercent, processorFeePercent decimal.Decimal) (Result, error) {
	if finalAmount.IsNegative() || !validPercent(platformCommissionPercent) || !validPercent(processorFeePercent) {
		return Result{}, ErrInvalidSplitInput
	}

	final := Round(finalAmount)
	commission := Round(final.Mul(platformCommissionPercent).Div(hundred))
	fee := Round(final.Mul(processorFeePercent).Div(hundred))
	net := final.Sub(commission).Sub(fee)
	if net.IsNegative() {
		return Result{}, ErrInvalidSplitInput
	}

	return Result{
		PlatformCommission: commission,
		ProcessorFee:       fee,
		PayeeNetAmount:     net,
	}, nil
}

// ApplyDiscount returns grossAmount reduced by discountPercent, rounded to
// the minor unit, and the discount that was taken off.
func ApplyDiscount(grossAmount, discountPercent decimal.Decimal) (final, discount decimal.Decimal, err error) {
	if grossAmount.IsNegative() || !validPercent(discountPercent) {
		return decimal.Zero, decimal.Zero, ErrInvalidSplitInput
	}
	gross := Round(grossAmount)
	final = Round(gross.Mul(hundred.Sub(discountPercent)).Div(hundred))
	return final, gross.Sub(final), nil
}

// Round rounds half away from zero, which is half-up for money amounts.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MinorUnitPlaces)
}

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
