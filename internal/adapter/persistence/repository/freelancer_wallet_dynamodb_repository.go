package repository

import (
	"context"
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type freelancerWalletItem struct {
	ProfileID        string                `dynamodbav:"profile_id"`
	PendingBalance   attributevalue.Number `dynamodbav:"pending_balance"`
	AvailableBalance attributevalue.Number `dynamodbav:"available_balance"`
	TotalEarned      attributevalue.Number `dynamodbav:"total_earned"`
	TotalWithdrawn   attributevalue.Number `dynamodbav:"total_withdrawn"`
	CreatedAt        string                `dynamodbav:"created_at"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// FreelancerWalletDynamoRepository owns freelancer wallets. Crediting also
// writes the proposal payments table, so both names are needed.
//
// Table requirements:
//   - wallets PK: profile_id (string)
type FreelancerWalletDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	paymentsTable string
	nowFn         func() time.Time
}

var _ interfaces.IFreelancerWalletRepository = (*FreelancerWalletDynamoRepository)(nil)

func NewFreelancerWalletDynamoRepository(ddb DynamoDBAPI, walletsTable, paymentsTable string) *FreelancerWalletDynamoRepository {
	return &FreelancerWalletDynamoRepository{
		ddb:           ddb,
		tableName:     walletsTable,
		paymentsTable: paymentsTable,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}

// CreditPending marks the payment record as credited and adds amount to the
// pending balance in one transaction. A missing wallet is created with zero
// balances.
func (r *FreelancerWalletDynamoRepository) CreditPending(ctx context.Context, paymentRecordID, profileID string, amount decimal.Decimal) (bool, error) {
	now := formatTime(r.nowFn())
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			markCreditedUpdate(r.paymentsTable, map[string]types.AttributeValue{
				"id": stringValue(paymentRecordID),
			}, now),
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"profile_id": stringValue(profileID),
					},
					UpdateExpression: aws.String("ADD pending_balance :amount " +
						"SET available_balance = if_not_exists(available_balance, :zero), " +
						"total_earned = if_not_exists(total_earned, :zero), " +
						"total_withdrawn = if_not_exists(total_withdrawn, :zero), " +
						"created_at = if_not_exists(created_at, :now), updated_at = :now"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": moneyValue(amount),
						":zero":   moneyValue(decimal.Zero),
						":now":    stringValue(now),
					},
				},
			},
		},
	})
	if err != nil {
		if isMarkerConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FreelancerWalletDynamoRepository) GetByProfileID(ctx context.Context, profileID string) (entities.FreelancerWallet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"profile_id": stringValue(profileID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FreelancerWallet{}, err
	}
	if len(out.Item) == 0 {
		return entities.FreelancerWallet{}, nil
	}

	var it freelancerWalletItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FreelancerWallet{}, err
	}
	return entities.FreelancerWallet{
		ProfileID:        it.ProfileID,
		PendingBalance:   decimalFromAttr(it.PendingBalance),
		AvailableBalance: decimalFromAttr(it.AvailableBalance),
		TotalEarned:      decimalFromAttr(it.TotalEarned),
		TotalWithdrawn:   decimalFromAttr(it.TotalWithdrawn),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}, nil
}
