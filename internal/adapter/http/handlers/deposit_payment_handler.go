package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "solar_quotes/internal/adapter/http/dto/request"
	response "solar_quotes/internal/adapter/http/dto/response"
	"solar_quotes/internal/usecase"
	"solar_quotes/pkg"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for installation deposits.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CreateDeposit charges the deposit of the accepted quote on quote_request_id.
//
// The body is either a raw Mercado Pago payment payload or {"mp_payload": {...}}.
//
// @Summary      Pay the installation deposit
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        quote_request_id  path      string                               true   "quote request id"
// @Param        payload           body      request.DepositPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200               {object}  response.DepositPaymentResponse
// @Failure      400               {object}  pkg.HTTPError
// @Failure      404               {object}  pkg.HTTPError
// @Failure      409               {object}  pkg.HTTPError
// @Router       /deposits/{quote_request_id} [post]
func (h *DepositPaymentHandler) CreateDeposit(c *gin.Context) {
	quoteRequestID := c.Param("quote_request_id")
	log.Printf("[deposit][handler] create start quote_request_id=%s", quoteRequestID)
	mockMode := usecase.IsPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload quote_request_id=%s err=%v", quoteRequestID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload quote_request_id=%s err=%v", quoteRequestID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteRequestID, mpPayload)
	if err != nil {
		log.Printf("[deposit][handler] create failed quote_request_id=%s err=%v", quoteRequestID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success quote_request_id=%s payment_id=%s status=%s", quoteRequestID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDeposit returns the latest deposit for a quote request.
//
// @Summary      Latest deposit of a quote request
// @Tags         deposits
// @Produce      json
// @Param        quote_request_id  path      string  true  "quote request id"
// @Success      200               {object}  response.DepositPaymentResponse
// @Failure      404               {object}  pkg.HTTPError
// @Router       /deposits/{quote_request_id} [get]
func (h *DepositPaymentHandler) GetDeposit(c *gin.Context) {
	quoteRequestID := c.Param("quote_request_id")
	log.Printf("[deposit][handler] get-by-quote-request start quote_request_id=%s", quoteRequestID)

	deposits, err := h.usecase.ListByQuoteRequestID(c.Request.Context(), quoteRequestID)
	if err != nil {
		log.Printf("[deposit][handler] get-by-quote-request failed quote_request_id=%s err=%v", quoteRequestID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(deposits) == 0 {
		log.Printf("[deposit][handler] get-by-quote-request not-found quote_request_id=%s", quoteRequestID)
		appErr := pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := deposits[0]
	for _, p := range deposits[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[deposit][handler] get-by-quote-request success quote_request_id=%s payment_id=%s status=%s", quoteRequestID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.DepositPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.MPPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID), errors.Is(err, usecase.ErrInvalidDepositPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote request has no accepted quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
