package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/timeout"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const defaultProcessorTimeout = 20 * time.Second

type GatewayOptions struct {
	AccessToken string
	Timeout     time.Duration
	Mock        bool
}

type MercadoPagoGateway struct {
	client   payment.Client
	executor failsafe.Executor[*payment.Response]
	breaker  circuitbreaker.CircuitBreaker[*payment.Response]
	mockMode bool
	logger   *logrus.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts GatewayOptions, logger *logrus.Logger) (*MercadoPagoGateway, error) {
	if opts.Mock {
		logger.Warn("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger}, nil
	}

	if opts.AccessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultProcessorTimeout
	}

	cfg, err := config.New(opts.AccessToken, config.WithHTTPClient(&idempotentRequester{
		client: &http.Client{Timeout: opts.Timeout},
	}))
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}

	breaker := newProcessorBreaker(logger)
	logger.WithField("timeout", opts.Timeout.String()).Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:   payment.NewClient(cfg),
		breaker:  breaker,
		executor: failsafe.With[*payment.Response](breaker, timeout.New[*payment.Response](opts.Timeout)),
		logger:   logger,
	}, nil
}

// newProcessorBreaker opens after half of the last ten calls timed out or
// hit a processor-side failure. Client errors (4xx) do not count.
func newProcessorBreaker(logger *logrus.Logger) circuitbreaker.CircuitBreaker[*payment.Response] {
	return circuitbreaker.NewBuilder[*payment.Response]().
		HandleIf(func(_ *payment.Response, err error) bool {
			if err == nil {
				return false
			}
			var re *mperror.ResponseError
			if errors.As(err, &re) {
				return re.StatusCode >= http.StatusInternalServerError
			}
			return true
		}).
		WithFailureThresholdRatio(5, 10).
		WithDelay(15 * time.Second).
		WithSuccessThreshold(1).
		OnStateChanged(func(event circuitbreaker.StateChangedEvent) {
			logger.WithFields(logrus.Fields{
				"from_state": breakerStateName(event.OldState),
				"to_state":   breakerStateName(event.NewState),
			}).Warn("[payment][gateway] circuit breaker state change")
		}).
		Build()
}

func breakerStateName(s circuitbreaker.State) string {
	switch s {
	case circuitbreaker.OpenState:
		return "open"
	case circuitbreaker.HalfOpenState:
		return "half-open"
	default:
		return "closed"
	}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.ChargeRequest) (entities.ProcessorPayment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(req)
	}
	if g == nil || g.client == nil {
		return entities.ProcessorPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	body, err := buildPaymentPayload(req)
	if err != nil {
		g.logger.WithError(err).Error("[payment][gateway] payload build failed")
		return entities.ProcessorPayment{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(body, &sdkReq); err != nil {
		g.logger.WithError(err).Error("[payment][gateway] payload unmarshal failed")
		return entities.ProcessorPayment{}, err
	}

	log := g.logger.WithFields(logrus.Fields{
		"method":          req.Method,
		"amount":          req.Amount.StringFixed(2),
		"idempotency_key": req.IdempotencyKey,
	})
	log.Info("[payment][gateway] create start")

	ctx = withIdempotencyKey(ctx, req.IdempotencyKey)
	resp, err := g.executor.WithContext(ctx).GetWithExecution(func(exec failsafe.Execution[*payment.Response]) (*payment.Response, error) {
		return g.client.Create(exec.Context(), sdkReq)
	})
	if err != nil {
		mapped := classifyError(err)
		log.WithError(err).Warn("[payment][gateway] sdk create failed")
		return entities.ProcessorPayment{}, mapped
	}

	p, err := toProcessorPayment(resp)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] response decode failed")
		return entities.ProcessorPayment{}, err
	}
	log.WithFields(logrus.Fields{
		"processor_payment_id": p.ID,
		"processor_status":     p.Status,
	}).Info("[payment][gateway] create success")
	return p, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, processorPaymentID string) (entities.ProcessorPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGet(processorPaymentID)
	}
	if g == nil || g.client == nil {
		return entities.ProcessorPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(processorPaymentID))
	if err != nil {
		return entities.ProcessorPayment{}, &interfaces.ProcessorError{
			StatusCode: http.StatusNotFound,
			Body:       fmt.Sprintf("invalid payment id %q", processorPaymentID),
		}
	}

	resp, err := g.executor.WithContext(ctx).GetWithExecution(func(exec failsafe.Execution[*payment.Response]) (*payment.Response, error) {
		return g.client.Get(exec.Context(), id)
	})
	if err != nil {
		g.logger.WithError(err).WithField("processor_payment_id", processorPaymentID).Warn("[payment][gateway] sdk get failed")
		return entities.ProcessorPayment{}, classifyError(err)
	}
	return toProcessorPayment(resp)
}

// classifyError maps SDK and resilience errors onto the gateway error set.
func classifyError(err error) error {
	var re *mperror.ResponseError
	switch {
	case errors.As(err, &re):
		return &interfaces.ProcessorError{StatusCode: re.StatusCode, Body: re.Message}
	case errors.Is(err, circuitbreaker.ErrOpen):
		return fmt.Errorf("%w: %v", interfaces.ErrProcessorUnavailable, err)
	case errors.Is(err, timeout.ErrExceeded), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", interfaces.ErrProcessorTimeout, err)
	default:
		return err
	}
}

type idempotencyKeyCtx struct{}

func withIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// idempotentRequester stamps the caller's idempotency key on outgoing SDK
// requests, replacing the random one the SDK generates.
type idempotentRequester struct {
	client *http.Client
}

func (r *idempotentRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyCtx{}).(string); ok && key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return r.client.Do(req)
}
