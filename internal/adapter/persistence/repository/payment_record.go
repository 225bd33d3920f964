package repository

import (
	"sort"
	"strings"

	"woorkins_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// upsertPaymentRecord builds the conditional write shared by proposal
// payments and woorkoin purchases.
//
// The write is skipped (ConditionalCheckFailed) when the record was already
// credited, or when it would move a paid record back to pending.
func upsertPaymentRecord(
	table string,
	key map[string]types.AttributeValue,
	status entities.PaymentStatus,
	fields map[string]types.AttributeValue,
	paidAt, createdAt, updatedAt string,
) *dynamodb.UpdateItemInput {
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status":     stringValue(string(status)),
		":created_at": stringValue(createdAt),
		":updated_at": stringValue(updatedAt),
	}
	sets := []string{
		"#status = :status",
		"created_at = if_not_exists(created_at, :created_at)",
		"updated_at = :updated_at",
	}

	attrs := make([]string, 0, len(fields))
	for attr := range fields {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)
	for _, attr := range attrs {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = fields[attr]
	}
	if paidAt != "" {
		sets = append(sets, "paid_at = if_not_exists(paid_at, :paid_at)")
		values[":paid_at"] = stringValue(paidAt)
	}

	cond := "attribute_not_exists(credited_at)"
	if status != entities.PaymentStatusPaid {
		cond += " AND (attribute_not_exists(#status) OR #status = :pending)"
		values[":pending"] = stringValue(string(entities.PaymentStatusPending))
	}

	return &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	}
}

// markCreditedUpdate sets credited_at on a paid, not yet credited record.
// It is the first item of every credit transaction.
func markCreditedUpdate(table string, key map[string]types.AttributeValue, now string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(table),
			Key:                 key,
			UpdateExpression:    aws.String("SET credited_at = :now, updated_at = :now"),
			ConditionExpression: aws.String("#status = :paid AND attribute_not_exists(credited_at)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":now":  stringValue(now),
				":paid": stringValue(string(entities.PaymentStatusPaid)),
			},
		},
	}
}
