package entities

import "github.com/shopspring/decimal"

const GatewayMercadoPago = "mercadopago"

// GatewayConfig is the operator-managed configuration of a payment gateway.
// Percentages are expressed as 0..100.
type GatewayConfig struct {
	Gateway             string
	Enabled             bool
	PixDiscountPercent  decimal.Decimal
	CardDiscountPercent decimal.Decimal
	PixFeePercent       decimal.Decimal
	CardFeePercent      decimal.Decimal
}

func (c GatewayConfig) DiscountPercent(m PaymentMethod) decimal.Decimal {
	switch m {
	case PaymentMethodPix:
		return c.PixDiscountPercent
	case PaymentMethodCard:
		return c.CardDiscountPercent
	}
	return decimal.Zero
}

func (c GatewayConfig) FeePercent(m PaymentMethod) decimal.Decimal {
	switch m {
	case PaymentMethodPix:
		return c.PixFeePercent
	case PaymentMethodCard:
		return c.CardFeePercent
	}
	return decimal.Zero
}
