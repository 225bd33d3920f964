package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type woorkoinPurchaseItem struct {
	ID               string                `dynamodbav:"id"`
	ProfileID        string                `dynamodbav:"profile_id"`
	Amount           int64                 `dynamodbav:"amount"`
	Price            attributevalue.Number `dynamodbav:"price"`
	OriginalPrice    attributevalue.Number `dynamodbav:"original_price"`
	Method           string                `dynamodbav:"method"`
	Status           string                `dynamodbav:"status"`
	ProcessorPayload string                `dynamodbav:"processor_payload,omitempty"`
	PaidAt           string                `dynamodbav:"paid_at,omitempty"`
	CreditedAt       string                `dynamodbav:"credited_at,omitempty"`
	CreatedAt        string                `dynamodbav:"created_at"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// WoorkoinPurchaseDynamoRepository persists purchase payment records.
//
// Table requirements:
//   - PK: id (string) = processor payment id
type WoorkoinPurchaseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWoorkoinPurchaseRepository = (*WoorkoinPurchaseDynamoRepository)(nil)

func NewWoorkoinPurchaseDynamoRepository(ddb DynamoDBAPI, tableName string) *WoorkoinPurchaseDynamoRepository {
	return &WoorkoinPurchaseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WoorkoinPurchaseDynamoRepository) Upsert(ctx context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error) {
	in := upsertPaymentRecord(r.tableName, map[string]types.AttributeValue{"id": stringValue(p.ID)}, p.Status, map[string]types.AttributeValue{
		"profile_id":        stringValue(p.ProfileID),
		"amount":            &types.AttributeValueMemberN{Value: strconv.FormatInt(p.Amount, 10)},
		"price":             moneyValue(p.Price),
		"original_price":    moneyValue(p.OriginalPrice),
		"method":            stringValue(string(p.Method)),
		"processor_payload": stringValue(string(p.ProcessorPayload)),
	}, formatTimePtr(p.PaidAt), formatTime(p.CreatedAt), formatTime(p.UpdatedAt))

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return r.GetByID(ctx, p.ID)
		}
		return entities.WoorkoinPurchase{}, err
	}

	var it woorkoinPurchaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WoorkoinPurchase{}, err
	}
	return fromWoorkoinPurchaseItem(it), nil
}

func (r *WoorkoinPurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.WoorkoinPurchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WoorkoinPurchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.WoorkoinPurchase{}, nil
	}

	var it woorkoinPurchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WoorkoinPurchase{}, err
	}
	return fromWoorkoinPurchaseItem(it), nil
}

func fromWoorkoinPurchaseItem(it woorkoinPurchaseItem) entities.WoorkoinPurchase {
	p := entities.WoorkoinPurchase{
		ID:            it.ID,
		ProfileID:     it.ProfileID,
		Amount:        it.Amount,
		Price:         decimalFromAttr(it.Price),
		OriginalPrice: decimalFromAttr(it.OriginalPrice),
		Method:        entities.PaymentMethod(it.Method),
		Status:        entities.PaymentStatus(it.Status),
		PaidAt:        parseTimePtr(it.PaidAt),
		CreditedAt:    parseTimePtr(it.CreditedAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.ProcessorPayload != "" {
		p.ProcessorPayload = json.RawMessage(it.ProcessorPayload)
	}
	return p
}
