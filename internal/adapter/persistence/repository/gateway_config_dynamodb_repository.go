package repository

import (
	"context"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type gatewayConfigItem struct {
	Gateway             string                `dynamodbav:"gateway"`
	IsEnabled           bool                  `dynamodbav:"is_enabled"`
	PixDiscountPercent  attributevalue.Number `dynamodbav:"pix_discount_percent,omitempty"`
	CardDiscountPercent attributevalue.Number `dynamodbav:"card_discount_percent,omitempty"`
	PixFeePercent       attributevalue.Number `dynamodbav:"pix_fee_percent,omitempty"`
	CardFeePercent      attributevalue.Number `dynamodbav:"card_fee_percent,omitempty"`
}

// GatewayConfigDynamoRepository reads operator-managed gateway settings.
//
// Table requirements:
//   - PK: gateway (string)
type GatewayConfigDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb DynamoDBAPI, tableName string) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *GatewayConfigDynamoRepository) Get(ctx context.Context, gateway string) (entities.GatewayConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"gateway": stringValue(gateway),
		},
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayConfig{}, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayConfig{}, err
	}
	return entities.GatewayConfig{
		Gateway:             it.Gateway,
		Enabled:             it.IsEnabled,
		PixDiscountPercent:  decimalFromAttr(it.PixDiscountPercent),
		CardDiscountPercent: decimalFromAttr(it.CardDiscountPercent),
		PixFeePercent:       decimalFromAttr(it.PixFeePercent),
		CardFeePercent:      decimalFromAttr(it.CardFeePercent),
	}, nil
}
