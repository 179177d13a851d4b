package response

import (
	"encoding/json"
	"testing"
	"time"

	"solar_quotes/internal/domain/entities"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.DepositPayment{
		ID:              "pay-1",
		QuoteRequestID:  "req-1",
		QuoteResponseID: "resp-1",
		Amount:          1950,
		Date:            now,
		Status:          entities.PaymentStatusAprovado,
		MPPayloadRaw:    raw,
		MPPayload:       payload,
	}

	res := FromDepositPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuoteRequestID != "req-1" || res.QuoteResponseID != "resp-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 1950 {
		t.Fatalf("unexpected amount: %v", res.Amount)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
