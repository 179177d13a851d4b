package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DepositPayment is the installation deposit paid after a quote is accepted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_request_id-index): quote_request_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider body (JSON) for traceability/audit.
//   - MPPayload is the parsed representation, useful for querying/debugging.
type DepositPayment struct {
	ID              string        `json:"id"`
	QuoteRequestID  string        `json:"quote_request_id"`
	QuoteResponseID string        `json:"quote_response_id"`
	Amount          float64       `json:"amount"`
	Date            time.Time     `json:"date"`
	Status          PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
