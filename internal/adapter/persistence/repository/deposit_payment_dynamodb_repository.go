package repository

import (
	"context"
	"strconv"
	"time"

	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName    = "deposits"
	depositsQuoteRequestIDIndex = "quote_request_id-index"
)

type depositPaymentItem struct {
	ID              string                 `dynamodbav:"id"`
	QuoteRequestID  string                 `dynamodbav:"quote_request_id"`
	QuoteResponseID string                 `dynamodbav:"quote_response_id"`
	Amount          string                 `dynamodbav:"amount"`
	Date            string                 `dynamodbav:"date"`
	Status          string                 `dynamodbav:"status"`
	MPPayload       map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw    string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// DepositPaymentDynamoRepository persists DepositPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_request_id-index (PK: quote_request_id)

type DepositPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentDynamoRepository)(nil)

func NewDepositPaymentDynamoRepository(ddb *dynamodb.Client) *DepositPaymentDynamoRepository {
	return &DepositPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositPaymentDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	av, err := attributevalue.MarshalMap(toDepositPaymentItem(p))
	if err != nil {
		return entities.DepositPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	return p, nil
}

func (r *DepositPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositPayment{}, nil
	}

	var it depositPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositPayment{}, err
	}
	return fromDepositPaymentItem(it), nil
}

func (r *DepositPaymentDynamoRepository) ListByQuoteRequestID(ctx context.Context, quoteRequestID string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsQuoteRequestIDIndex),
		KeyConditionExpression: aws.String("quote_request_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositPaymentItem(it))
	}
	return items, nil
}

func toDepositPaymentItem(p entities.DepositPayment) depositPaymentItem {
	return depositPaymentItem{
		ID:              p.ID,
		QuoteRequestID:  p.QuoteRequestID,
		QuoteResponseID: p.QuoteResponseID,
		Amount:          floatToString(p.Amount),
		Date:            p.Date.UTC().Format(time.RFC3339Nano),
		Status:          string(p.Status),
		MPPayload:       p.MPPayload,
		MPPayloadRaw:    string(p.MPPayloadRaw),
	}
}

func fromDepositPaymentItem(it depositPaymentItem) entities.DepositPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.DepositPayment{
		ID:              it.ID,
		QuoteRequestID:  it.QuoteRequestID,
		QuoteResponseID: it.QuoteResponseID,
		Amount:          amount,
		Date:            dt,
		Status:          entities.PaymentStatus(it.Status),
		MPPayload:       it.MPPayload,
		MPPayloadRaw:    []byte(it.MPPayloadRaw),
	}
}
