package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/domain/split"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type InitiatorConfig struct {
	Gateway         string
	PixExpiration   time.Duration
	NotificationURL string
}

// Quote is a priced charge that has not been submitted yet.
type Quote struct {
	Method              entities.PaymentMethod
	OriginalAmount      decimal.Decimal
	FinalAmount         decimal.Decimal
	DiscountApplied     decimal.Decimal
	DiscountPercent     decimal.Decimal
	ProcessorFeePercent decimal.Decimal
}

type ChargeIntent struct {
	Quote             Quote
	Description       string
	Payer             entities.Payer
	Card              *entities.CardDetails
	ExternalReference string
}

type InitiatedPayment struct {
	Quote
	Payment        entities.ProcessorPayment
	IdempotencyKey string
}

// PaymentInitiator prices a charge from the gateway configuration and
// submits it to the processor. It never retries.
type PaymentInitiator struct {
	configs interfaces.IGatewayConfigRepository
	gateway interfaces.IPaymentGateway
	metrics interfaces.IPaymentMetrics
	cfg     InitiatorConfig
	logger  *logrus.Logger
	nowFn   func() time.Time
	keyFn   func() string
}

func NewPaymentInitiator(configs interfaces.IGatewayConfigRepository, gateway interfaces.IPaymentGateway, metrics interfaces.IPaymentMetrics, cfg InitiatorConfig, logger *logrus.Logger) *PaymentInitiator {
	if cfg.Gateway == "" {
		cfg.Gateway = entities.GatewayMercadoPago
	}
	if cfg.PixExpiration <= 0 {
		cfg.PixExpiration = 30 * time.Minute
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &PaymentInitiator{
		configs: configs,
		gateway: gateway,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
		nowFn:   func() time.Time { return time.Now().UTC() },
		keyFn:   uuid.NewString,
	}
}

// GatewayConfig loads the configuration and fails with ErrGatewayDisabled
// when the gateway is missing or switched off.
func (i *PaymentInitiator) GatewayConfig(ctx context.Context) (entities.GatewayConfig, error) {
	cfg, err := i.configs.Get(ctx, i.cfg.Gateway)
	if err != nil {
		i.logger.WithError(err).WithField("gateway", i.cfg.Gateway).Error("[payment][initiator] gateway config lookup failed")
		return entities.GatewayConfig{}, err
	}
	if cfg.Gateway == "" || !cfg.Enabled {
		i.logger.WithField("gateway", i.cfg.Gateway).Warn("[payment][initiator] gateway disabled")
		return entities.GatewayConfig{}, ErrGatewayDisabled
	}
	return cfg, nil
}

func (i *PaymentInitiator) Quote(ctx context.Context, method entities.PaymentMethod, grossAmount decimal.Decimal) (Quote, error) {
	cfg, err := i.GatewayConfig(ctx)
	if err != nil {
		return Quote{}, err
	}

	discountPercent := cfg.DiscountPercent(method)
	final, discount, err := split.ApplyDiscount(grossAmount, discountPercent)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Method:              method,
		OriginalAmount:      split.Round(grossAmount),
		FinalAmount:         final,
		DiscountApplied:     discount,
		DiscountPercent:     discountPercent,
		ProcessorFeePercent: cfg.FeePercent(method),
	}, nil
}

func (i *PaymentInitiator) Submit(ctx context.Context, intent ChargeIntent) (InitiatedPayment, error) {
	q := intent.Quote
	req := entities.ChargeRequest{
		Method:            q.Method,
		Amount:            q.FinalAmount,
		Description:       intent.Description,
		Payer:             intent.Payer,
		ExternalReference: intent.ExternalReference,
		NotificationURL:   i.cfg.NotificationURL,
		// One key per attempt: a client retry is a new charge attempt.
		IdempotencyKey: i.keyFn(),
	}
	switch q.Method {
	case entities.PaymentMethodPix:
		expires := i.nowFn().Add(i.cfg.PixExpiration)
		req.ExpiresAt = &expires
	case entities.PaymentMethodCard:
		req.Card = intent.Card
	}

	log := i.logger.WithFields(logrus.Fields{
		"method":             q.Method,
		"final_amount":       q.FinalAmount.StringFixed(2),
		"external_reference": req.ExternalReference,
		"idempotency_key":    req.IdempotencyKey,
	})
	log.Info("[payment][initiator] submitting charge")

	start := time.Now()
	p, err := i.gateway.CreatePayment(ctx, req)
	if err != nil {
		mapped := mapGatewayError(err)
		i.metrics.ProcessorCall("create", processorOutcome(mapped), time.Since(start))
		log.WithError(err).Warn("[payment][initiator] charge failed")
		return InitiatedPayment{}, mapped
	}
	i.metrics.ProcessorCall("create", "ok", time.Since(start))
	if p.ID == "" {
		log.Error("[payment][initiator] processor answered without payment id")
		return InitiatedPayment{}, fmt.Errorf("%w: missing processor payment id", ErrProcessorUnknown)
	}

	log.WithFields(logrus.Fields{
		"processor_payment_id": p.ID,
		"processor_status":     p.Status,
	}).Info("[payment][initiator] charge submitted")

	return InitiatedPayment{Quote: q, Payment: p, IdempotencyKey: req.IdempotencyKey}, nil
}

// Fetch reads the current processor view of a payment.
func (i *PaymentInitiator) Fetch(ctx context.Context, processorPaymentID string) (entities.ProcessorPayment, error) {
	start := time.Now()
	p, err := i.gateway.GetPayment(ctx, processorPaymentID)
	if err != nil {
		mapped := mapGatewayError(err)
		i.metrics.ProcessorCall("get", processorOutcome(mapped), time.Since(start))
		i.logger.WithError(err).WithField("processor_payment_id", processorPaymentID).Warn("[payment][initiator] fetch failed")
		return entities.ProcessorPayment{}, mapped
	}
	i.metrics.ProcessorCall("get", "ok", time.Since(start))
	return p, nil
}

func mapGatewayError(err error) error {
	var pe *interfaces.ProcessorError
	switch {
	case errors.As(err, &pe):
		return &ProcessorRejectedError{StatusCode: pe.StatusCode, Body: pe.Body}
	case errors.Is(err, interfaces.ErrProcessorUnavailable):
		return &ProcessorRejectedError{StatusCode: 503, Body: err.Error()}
	default:
		// Timeouts, transport errors and anything unexpected: the charge may
		// exist on the processor side, so nothing may be credited.
		return fmt.Errorf("%w: %v", ErrProcessorUnknown, err)
	}
}

func processorOutcome(err error) string {
	if errors.Is(err, ErrProcessorRejected) {
		return "rejected"
	}
	return "unknown"
}
