package repository

import (
	"context"
	"encoding/json"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const proposalPaymentsProcessorIDIndex = "processor_payment_id-index"

type proposalPaymentItem struct {
	ID                 string                `dynamodbav:"id"`
	ProposalID         string                `dynamodbav:"proposal_id"`
	ProcessorPaymentID string                `dynamodbav:"processor_payment_id"`
	PayerProfileID     string                `dynamodbav:"payer_profile_id,omitempty"`
	Amount             attributevalue.Number `dynamodbav:"amount"`
	OriginalAmount     attributevalue.Number `dynamodbav:"original_amount"`
	Status             string                `dynamodbav:"status"`
	Method             string                `dynamodbav:"method"`
	ProcessorPayload   string                `dynamodbav:"processor_payload,omitempty"`
	PaidAt             string                `dynamodbav:"paid_at,omitempty"`
	CreditedAt         string                `dynamodbav:"credited_at,omitempty"`
	CreatedAt          string                `dynamodbav:"created_at"`
	UpdatedAt          string                `dynamodbav:"updated_at"`
}

// ProposalPaymentDynamoRepository persists ProposalPayment records.
//
// Table requirements:
//   - PK: id (string) = <proposal_id>#<processor_payment_id>
//   - GSI: processor_payment_id-index (PK: processor_payment_id)
type ProposalPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProposalPaymentRepository = (*ProposalPaymentDynamoRepository)(nil)

func NewProposalPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *ProposalPaymentDynamoRepository {
	return &ProposalPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalPaymentDynamoRepository) Upsert(ctx context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
	fields := map[string]types.AttributeValue{
		"proposal_id":          stringValue(p.ProposalID),
		"processor_payment_id": stringValue(p.ProcessorPaymentID),
		"amount":               moneyValue(p.Amount),
		"original_amount":      moneyValue(p.OriginalAmount),
		"method":               stringValue(string(p.Method)),
		"processor_payload":    stringValue(string(p.ProcessorPayload)),
	}
	if p.PayerProfileID != "" {
		fields["payer_profile_id"] = stringValue(p.PayerProfileID)
	}
	in := upsertPaymentRecord(r.tableName, map[string]types.AttributeValue{"id": stringValue(p.ID)}, p.Status, fields,
		formatTimePtr(p.PaidAt), formatTime(p.CreatedAt), formatTime(p.UpdatedAt))

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return r.GetByID(ctx, p.ID)
		}
		return entities.ProposalPayment{}, err
	}

	var it proposalPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProposalPayment{}, err
	}
	return fromProposalPaymentItem(it), nil
}

func (r *ProposalPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProposalPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProposalPayment{}, nil
	}

	var it proposalPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProposalPayment{}, err
	}
	return fromProposalPaymentItem(it), nil
}

// GetByProcessorPaymentID reads through the GSI, so the result can lag a
// write made a moment ago.
func (r *ProposalPaymentDynamoRepository) GetByProcessorPaymentID(ctx context.Context, processorPaymentID string) (entities.ProposalPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalPaymentsProcessorIDIndex),
		KeyConditionExpression: aws.String("processor_payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": stringValue(processorPaymentID),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.ProposalPayment{}, nil
	}

	var it proposalPaymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ProposalPayment{}, err
	}
	// The GSI projection may not carry every attribute.
	return r.GetByID(ctx, it.ID)
}

func fromProposalPaymentItem(it proposalPaymentItem) entities.ProposalPayment {
	p := entities.ProposalPayment{
		ID:                 it.ID,
		ProposalID:         it.ProposalID,
		ProcessorPaymentID: it.ProcessorPaymentID,
		PayerProfileID:     it.PayerProfileID,
		Amount:             decimalFromAttr(it.Amount),
		OriginalAmount:     decimalFromAttr(it.OriginalAmount),
		Status:             entities.PaymentStatus(it.Status),
		Method:             entities.PaymentMethod(it.Method),
		PaidAt:             parseTimePtr(it.PaidAt),
		CreditedAt:         parseTimePtr(it.CreditedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.ProcessorPayload != "" {
		p.ProcessorPayload = json.RawMessage(it.ProcessorPayload)
	}
	return p
}
