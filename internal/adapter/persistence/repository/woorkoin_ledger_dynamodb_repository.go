package repository

import (
	"context"
	"strconv"
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const woorkoinTransactionsProfileIndex = "profile_id-index"

type woorkoinBalanceItem struct {
	ProfileID string `dynamodbav:"profile_id"`
	Balance   int64  `dynamodbav:"balance"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type woorkoinTransactionItem struct {
	ID          string `dynamodbav:"id"`
	ProfileID   string `dynamodbav:"profile_id"`
	Type        string `dynamodbav:"type"`
	Amount      int64  `dynamodbav:"amount"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type WoorkoinTables struct {
	Purchases    string
	Balances     string
	Transactions string
}

// WoorkoinLedgerDynamoRepository owns Woorkoin balances and their
// transaction log.
//
// Table requirements:
//   - balances PK: profile_id (string)
//   - transactions PK: id (string), GSI profile_id-index (PK: profile_id, SK: created_at)
type WoorkoinLedgerDynamoRepository struct {
	ddb    DynamoDBAPI
	tables WoorkoinTables
	nowFn  func() time.Time
}

var _ interfaces.IWoorkoinLedgerRepository = (*WoorkoinLedgerDynamoRepository)(nil)

func NewWoorkoinLedgerDynamoRepository(ddb DynamoDBAPI, tables WoorkoinTables) *WoorkoinLedgerDynamoRepository {
	return &WoorkoinLedgerDynamoRepository{
		ddb:    ddb,
		tables: tables,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// CreditPurchase marks the purchase as credited, increments the balance and
// appends the log entry in one transaction.
func (r *WoorkoinLedgerDynamoRepository) CreditPurchase(ctx context.Context, purchase entities.WoorkoinPurchase, entry entities.WoorkoinTransaction) (bool, error) {
	now := formatTime(r.nowFn())
	entryAV, err := attributevalue.MarshalMap(woorkoinTransactionItem{
		ID:          entry.ID,
		ProfileID:   entry.ProfileID,
		Type:        entry.Type,
		Amount:      entry.Amount,
		Description: entry.Description,
		CreatedAt:   formatTime(entry.CreatedAt),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			markCreditedUpdate(r.tables.Purchases, map[string]types.AttributeValue{
				"id": stringValue(purchase.ID),
			}, now),
			{
				Update: &types.Update{
					TableName: aws.String(r.tables.Balances),
					Key: map[string]types.AttributeValue{
						"profile_id": stringValue(purchase.ProfileID),
					},
					UpdateExpression: aws.String("ADD #balance :amount SET updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#balance": "balance",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: strconv.FormatInt(purchase.Amount, 10)},
						":now":    stringValue(now),
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tables.Transactions),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
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

func (r *WoorkoinLedgerDynamoRepository) GetBalance(ctx context.Context, profileID string) (entities.WoorkoinBalance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Balances),
		Key: map[string]types.AttributeValue{
			"profile_id": stringValue(profileID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WoorkoinBalance{}, err
	}
	if len(out.Item) == 0 {
		return entities.WoorkoinBalance{}, nil
	}

	var it woorkoinBalanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WoorkoinBalance{}, err
	}
	return entities.WoorkoinBalance{
		ProfileID: it.ProfileID,
		Balance:   it.Balance,
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

// ListTransactions returns the newest entries first.
func (r *WoorkoinLedgerDynamoRepository) ListTransactions(ctx context.Context, profileID string, limit int32) ([]entities.WoorkoinTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Transactions),
		IndexName:              aws.String(woorkoinTransactionsProfileIndex),
		KeyConditionExpression: aws.String("profile_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": stringValue(profileID),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WoorkoinTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it woorkoinTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.WoorkoinTransaction{
			ID:          it.ID,
			ProfileID:   it.ProfileID,
			Type:        it.Type,
			Amount:      it.Amount,
			Description: it.Description,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return items, nil
}
