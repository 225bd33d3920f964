package interfaces

import (
	"context"

	"woorkins_payments/internal/domain/entities"
)

// IGatewayConfigRepository reads the operator configuration of a gateway.
// A zero GatewayConfig means the gateway was never configured.
type IGatewayConfigRepository interface {
	Get(ctx context.Context, gateway string) (entities.GatewayConfig, error)
}
