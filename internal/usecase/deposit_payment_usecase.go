package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidDepositPaymentID        = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotAccepted               = errors.New("quote request has no accepted quote")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const defaultDepositPercent = 10.0

// IDepositPaymentUseCase charges the installation deposit of an accepted quote.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteRequestID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuoteRequestID(ctx context.Context, quoteRequestID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo    interfaces.IDepositPaymentRepository
	quotes  IQuoteMatchingUseCase
	gateway interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, quotes IQuoteMatchingUseCase, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, quotes: quotes, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, quoteRequestID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[deposit][usecase] create-and-approve start raw_quote_request_id=%q payload_len=%d", quoteRequestID, len(mpPayload))
	mockMode := IsPaymentGatewayMockEnabled()
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	if quoteRequestID == "" {
		return entities.DepositPayment{}, ErrInvalidQuoteRequestID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[deposit][usecase] invalid payload quote_request_id=%s", quoteRequestID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[deposit][usecase] gateway not configured quote_request_id=%s", quoteRequestID)
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}

	detail, err := u.quotes.GetQuoteRequestByID(ctx, quoteRequestID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading quote request quote_request_id=%s err=%v", quoteRequestID, err)
		return entities.DepositPayment{}, err
	}
	accepted, ok := acceptedResponse(detail)
	if !ok {
		log.Printf("[deposit][usecase] quote not accepted quote_request_id=%s status=%s", quoteRequestID, detail.Request.Status)
		return entities.DepositPayment{}, ErrQuoteNotAccepted
	}
	amount := depositAmount(accepted)
	log.Printf("[deposit][usecase] accepted quote loaded quote_request_id=%s response_id=%s amount=%.2f", quoteRequestID, accepted.ID, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[deposit][usecase] missing payment_method_id quote_request_id=%s", quoteRequestID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[deposit][usecase] missing/invalid payer quote_request_id=%s", quoteRequestID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events with the quote.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteRequestID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Solar installation deposit %s", quoteRequestID)
	}
	// The amount always comes from the accepted quote.
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway quote_request_id=%s", quoteRequestID)
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.DepositPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed quote_request_id=%s err=%v", quoteRequestID, err)
			return entities.DepositPayment{}, mapGatewayError(err)
		}
	}
	log.Printf("[deposit][usecase] payment gateway success quote_request_id=%s provider_payment_id=%s provider_status=%s", quoteRequestID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed quote_request_id=%s err=%v", quoteRequestID, err)
	}

	p := entities.DepositPayment{
		ID:              providerPaymentID,
		QuoteRequestID:  quoteRequestID,
		QuoteResponseID: accepted.ID,
		Amount:          amount,
		Date:            time.Now().UTC(),
		Status:          paymentStatusFromProvider(providerStatus),
		MPPayloadRaw:    providerResp,
		MPPayload:       parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[deposit][usecase] repository create failed quote_request_id=%s payment_id=%s err=%v", quoteRequestID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] create-and-approve success quote_request_id=%s payment_id=%s status=%s", quoteRequestID, created.ID, created.Status)
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrInvalidDepositPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByQuoteRequestID(ctx context.Context, quoteRequestID string) ([]entities.DepositPayment, error) {
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	if quoteRequestID == "" {
		return nil, ErrInvalidQuoteRequestID
	}
	return u.repo.ListByQuoteRequestID(ctx, quoteRequestID)
}

func acceptedResponse(d entities.QuoteRequestDetail) (entities.QuoteResponse, bool) {
	if d.Request.Status != entities.QuoteRequestStatusCompleted {
		return entities.QuoteResponse{}, false
	}
	for _, r := range d.Responses {
		if r.Status == entities.QuoteResponseStatusAccepted {
			return r, true
		}
	}
	return entities.QuoteResponse{}, false
}

// depositAmount is the quoted down payment, or DEPOSIT_PERCENT of the total
// price when the vendor offered none. Rounded to cents.
func depositAmount(r entities.QuoteResponse) float64 {
	if r.Financing.DownPayment > 0 {
		return roundCents(r.Financing.DownPayment)
	}
	return roundCents(r.TotalPrice * depositPercent() / 100)
}

func depositPercent() float64 {
	v := strings.TrimSpace(os.Getenv("DEPOSIT_PERCENT"))
	if v == "" {
		return defaultDepositPercent
	}
	p, err := strconv.ParseFloat(v, 64)
	if err != nil || p <= 0 || p > 100 {
		log.Printf("[deposit][usecase] invalid DEPOSIT_PERCENT=%q; using %.0f", v, defaultDepositPercent)
		return defaultDepositPercent
	}
	return p
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox payer user id
// for its email, which is what the sandbox accepts.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[deposit][usecase] mapped sandbox payer user_id to payer.email")
}

// IsPaymentGatewayMockEnabled reports whether deposits are approved locally
// instead of being sent to Mercado Pago.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
