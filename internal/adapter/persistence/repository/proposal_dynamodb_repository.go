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
)

type proposalItem struct {
	ID                 string                `dynamodbav:"id"`
	ProjectID          string                `dynamodbav:"project_id"`
	FreelancerID       string                `dynamodbav:"freelancer_id"`
	Status             string                `dynamodbav:"status"`
	AcceptedAmount     attributevalue.Number `dynamodbav:"accepted_amount,omitempty"`
	FreelancerAmount   attributevalue.Number `dynamodbav:"freelancer_amount,omitempty"`
	PlatformCommission attributevalue.Number `dynamodbav:"platform_commission,omitempty"`
	ProcessorFee       attributevalue.Number `dynamodbav:"processor_fee,omitempty"`
	PaymentStatus      string                `dynamodbav:"payment_status,omitempty"`
	UpdatedAt          string                `dynamodbav:"updated_at,omitempty"`
}

// ProposalDynamoRepository reads proposals and keeps their payment summary.
//
// Table requirements:
//   - PK: id (string)
type ProposalDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	nowFn     func() time.Time
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoDBAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return entities.Proposal{
		ID:                 it.ID,
		ProjectID:          it.ProjectID,
		FreelancerID:       it.FreelancerID,
		Status:             it.Status,
		AcceptedAmount:     decimalFromAttr(it.AcceptedAmount),
		FreelancerAmount:   decimalFromAttr(it.FreelancerAmount),
		PlatformCommission: decimalFromAttr(it.PlatformCommission),
		ProcessorFee:       decimalFromAttr(it.ProcessorFee),
		PaymentStatus:      entities.PaymentStatus(it.PaymentStatus),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}, nil
}

// UpdatePaymentSummary overwrites the split fields. A paid proposal is never
// moved back to pending.
func (r *ProposalDynamoRepository) UpdatePaymentSummary(ctx context.Context, id string, s entities.ProposalPaymentSummary) error {
	cond := "attribute_exists(id)"
	values := map[string]types.AttributeValue{
		":accepted":   moneyValue(s.AcceptedAmount),
		":freelancer": moneyValue(s.FreelancerAmount),
		":commission": moneyValue(s.PlatformCommission),
		":fee":        moneyValue(s.ProcessorFee),
		":ps":         stringValue(string(s.PaymentStatus)),
		":now":        stringValue(formatTime(r.nowFn())),
	}
	if s.PaymentStatus != entities.PaymentStatusPaid {
		cond += " AND (attribute_not_exists(payment_status) OR payment_status <> :paid)"
		values[":paid"] = stringValue(string(entities.PaymentStatusPaid))
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		UpdateExpression: aws.String("SET accepted_amount = :accepted, freelancer_amount = :freelancer, " +
			"platform_commission = :commission, processor_fee = :fee, payment_status = :ps, updated_at = :now"),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeValues: values,
	})
	if err != nil && isConditionalCheckFailed(err) && s.PaymentStatus != entities.PaymentStatusPaid {
		// Either already paid or gone; both leave nothing to update.
		return nil
	}
	return err
}
