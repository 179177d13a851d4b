package repository

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"solar_quotes/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/require"
)

func TestQuoteSnapshotItem_RoundTrip(t *testing.T) {
	want := sampleSnapshot()

	it, err := toQuoteSnapshotItem("solar-quotes", want)
	require.NoError(t, err)
	require.Equal(t, "solar-quotes", it.Key)
	require.Equal(t, 1, it.Requests)
	require.Equal(t, 2, it.Responses)
	require.Equal(t, want.SavedAt.Format(time.RFC3339Nano), it.SavedAt)

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	var back quoteSnapshotItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &back))

	got, err := fromQuoteSnapshotItem(back)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestQuoteSnapshotItem_EmptyPayload(t *testing.T) {
	got, err := fromQuoteSnapshotItem(quoteSnapshotItem{Key: "k"})
	require.NoError(t, err)
	require.True(t, got.IsEmpty())

	_, err = fromQuoteSnapshotItem(quoteSnapshotItem{Key: "k", Payload: "{"})
	require.Error(t, err)
}

func TestDepositPaymentItem_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	raw := json.RawMessage(`{"id":"pay-1","status":"approved"}`)
	p := entities.DepositPayment{
		ID:              "pay-1",
		QuoteRequestID:  "req-1",
		QuoteResponseID: "resp-1",
		Amount:          2520.15,
		Date:            now,
		Status:          entities.PaymentStatusAprovado,
		MPPayloadRaw:    raw,
		MPPayload:       map[string]interface{}{"id": "pay-1", "status": "approved"},
	}

	it := toDepositPaymentItem(p)
	require.Equal(t, "2520.15", it.Amount)

	got := fromDepositPaymentItem(it)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.QuoteRequestID, got.QuoteRequestID)
	require.Equal(t, p.QuoteResponseID, got.QuoteResponseID)
	require.Equal(t, p.Amount, got.Amount)
	require.True(t, got.Date.Equal(now))
	require.Equal(t, p.Status, got.Status)
	require.JSONEq(t, string(raw), string(got.MPPayloadRaw))
	require.Equal(t, p.MPPayload, got.MPPayload)
}

func TestQuoteSnapshotDynamoRepository_SaveTooLarge(t *testing.T) {
	snap := sampleSnapshot()
	snap.Responses[0].Terms = strings.Repeat("x", maxSnapshotPayloadBytes)

	// The size check runs before any DynamoDB call, so no client is needed.
	repo := &QuoteSnapshotDynamoRepository{tableName: "quote_snapshots"}
	err := repo.Save(context.Background(), "solar-quotes", snap)
	require.ErrorIs(t, err, ErrSnapshotTooLarge)
	require.Contains(t, err.Error(), "payload_bytes=")
	require.Contains(t, err.Error(), "key=solar-quotes")
}
