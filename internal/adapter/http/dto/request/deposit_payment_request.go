package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload for POST /deposits/:quote_request_id.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.

type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
