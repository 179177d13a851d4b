package response

import (
	"solar_quotes/internal/domain/entities"
	"time"
)

type DepositPaymentResponse struct {
	PaymentID       string    `json:"payment_id"`
	ID              string    `json:"id"`
	QuoteRequestID  string    `json:"quote_request_id"`
	QuoteResponseID string    `json:"quote_response_id"`
	Amount          float64   `json:"amount"`
	PaymentDate     time.Time `json:"payment_date"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:       p.ID,
		ID:              p.ID,
		QuoteRequestID:  p.QuoteRequestID,
		QuoteResponseID: p.QuoteResponseID,
		Amount:          p.Amount,
		PaymentDate:     p.Date,
		Date:            p.Date,
		Status:          string(p.Status),
		MPPayloadRaw:    string(p.MPPayloadRaw),
		MPPayload:       p.MPPayload,
	}
}
