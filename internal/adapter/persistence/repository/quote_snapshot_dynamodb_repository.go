package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
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
	defaultSnapshotsTableName = "quote_snapshots"

	// DynamoDB rejects items above 400 KB; the margin covers the key and the
	// other attributes.
	maxSnapshotPayloadBytes  = 400*1024 - 2*1024
	warnSnapshotPayloadBytes = maxSnapshotPayloadBytes * 8 / 10
)

var ErrSnapshotTooLarge = errors.New("quote snapshot exceeds dynamodb item size limit")

type quoteSnapshotItem struct {
	Key       string `dynamodbav:"key"`
	Payload   string `dynamodbav:"payload"`
	SavedAt   string `dynamodbav:"saved_at"`
	Requests  int    `dynamodbav:"requests"`
	Responses int    `dynamodbav:"responses"`
}

// QuoteSnapshotDynamoRepository stores the quote store blob in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// The snapshot is kept as one JSON string attribute. Saves past the item size
// limit fail with ErrSnapshotTooLarge before reaching DynamoDB.

type QuoteSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteSnapshotRepository = (*QuoteSnapshotDynamoRepository)(nil)

func NewQuoteSnapshotDynamoRepository(ddb *dynamodb.Client) *QuoteSnapshotDynamoRepository {
	return &QuoteSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *QuoteSnapshotDynamoRepository) Load(ctx context.Context, key string) (entities.QuoteSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteSnapshot{}, nil
	}

	var it quoteSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteSnapshot{}, err
	}
	return fromQuoteSnapshotItem(it)
}

// Save overwrites the blob with an UpdateItem, creating the item when missing.
func (r *QuoteSnapshotDynamoRepository) Save(ctx context.Context, key string, snapshot entities.QuoteSnapshot) error {
	it, err := toQuoteSnapshotItem(key, snapshot)
	if err != nil {
		return err
	}
	size := len(it.Payload)
	if size > maxSnapshotPayloadBytes {
		return fmt.Errorf("%w: key=%s payload_bytes=%d limit_bytes=%d", ErrSnapshotTooLarge, key, size, maxSnapshotPayloadBytes)
	}
	if size > warnSnapshotPayloadBytes {
		log.Printf("[quote][repository] snapshot nearing dynamodb item limit key=%s payload_bytes=%d limit_bytes=%d", key, size, maxSnapshotPayloadBytes)
	}

	names := map[string]string{
		"#payload":   "payload",
		"#saved_at":  "saved_at",
		"#requests":  "requests",
		"#responses": "responses",
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("SET #payload = :payload, #saved_at = :saved_at, #requests = :requests, #responses = :responses"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload":   &types.AttributeValueMemberS{Value: it.Payload},
			":saved_at":  &types.AttributeValueMemberS{Value: it.SavedAt},
			":requests":  &types.AttributeValueMemberN{Value: strconv.Itoa(it.Requests)},
			":responses": &types.AttributeValueMemberN{Value: strconv.Itoa(it.Responses)},
		},
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return fmt.Errorf("save snapshot key=%s payload_bytes=%d: %w", key, size, err)
	}
	return nil
}

func toQuoteSnapshotItem(key string, s entities.QuoteSnapshot) (quoteSnapshotItem, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return quoteSnapshotItem{}, err
	}
	return quoteSnapshotItem{
		Key:       key,
		Payload:   string(payload),
		SavedAt:   s.SavedAt.UTC().Format(time.RFC3339Nano),
		Requests:  len(s.Requests),
		Responses: len(s.Responses),
	}, nil
}

func fromQuoteSnapshotItem(it quoteSnapshotItem) (entities.QuoteSnapshot, error) {
	var s entities.QuoteSnapshot
	if it.Payload == "" {
		return s, nil
	}
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		return entities.QuoteSnapshot{}, err
	}
	return s, nil
}
