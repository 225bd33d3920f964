package repository

import (
	"context"
	"testing"

	"woorkins_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayConfigRepository_Get(t *testing.T) {
	t.Run("missing row is zero config", func(t *testing.T) {
		fake := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
		}
		cfg, err := NewGatewayConfigDynamoRepository(fake, "payment_gateway_config").Get(context.Background(), entities.GatewayMercadoPago)
		require.NoError(t, err)
		assert.Empty(t, cfg.Gateway)
		assert.False(t, cfg.Enabled)
	})

	t.Run("reads percentages", func(t *testing.T) {
		fake := &fakeDynamo{
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				assert.Equal(t, "mercadopago", in.Key["gateway"].(*types.AttributeValueMemberS).Value)
				return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
					"gateway":              s("mercadopago"),
					"is_enabled":           &types.AttributeValueMemberBOOL{Value: true},
					"pix_discount_percent": n("3"),
					"card_fee_percent":     n("4.99"),
				}}, nil
			},
		}
		cfg, err := NewGatewayConfigDynamoRepository(fake, "payment_gateway_config").Get(context.Background(), entities.GatewayMercadoPago)
		require.NoError(t, err)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, "3", cfg.DiscountPercent(entities.PaymentMethodPix).String())
		assert.True(t, cfg.DiscountPercent(entities.PaymentMethodCard).IsZero())
		assert.Equal(t, "4.99", cfg.FeePercent(entities.PaymentMethodCard).String())
	})
}
