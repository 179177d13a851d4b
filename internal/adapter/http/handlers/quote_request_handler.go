package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "solar_quotes/internal/adapter/http/dto/request"
	response "solar_quotes/internal/adapter/http/dto/response"
	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/usecase"
	"solar_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuoteRequestPayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_REQUEST_INPUT", "Invalid quote request payload", http.StatusBadRequest)
)

// QuoteRequestHandler serves the customer side of the marketplace: creating
// quote requests, listing them and deciding on vendor quotes.

type QuoteRequestHandler struct {
	usecase usecase.IQuoteMatchingUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteMatchingUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// CreateQuoteRequest godoc
// @Summary      Submit a quote request
// @Description  Creates a pending request asking vendors for solar installation quotes.
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateQuoteRequestRequest  true  "quote request"
// @Success      201      {object}  response.QuoteRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /quote-requests [post]
func (h *QuoteRequestHandler) CreateQuoteRequest(c *gin.Context) {
	var payload request.CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuoteRequestPayload.HTTPStatus, errInvalidQuoteRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.SubmitQuoteRequest(c.Request.Context(), payload.ToNewQuoteRequest())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// ListUserQuoteRequests godoc
// @Summary      List a customer's quote requests
// @Tags         quote-requests
// @Produce      json
// @Param        user_id  query     string  true  "customer id"
// @Success      200      {array}   response.QuoteRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /quote-requests [get]
func (h *QuoteRequestHandler) ListUserQuoteRequests(c *gin.Context) {
	details, err := h.usecase.GetUserQuoteRequests(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequestDetails(details))
}

// GetQuoteRequest godoc
// @Summary      Get a quote request with its vendor responses
// @Tags         quote-requests
// @Produce      json
// @Param        id   path      string  true  "quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quote-requests/{id} [get]
func (h *QuoteRequestHandler) GetQuoteRequest(c *gin.Context) {
	detail, err := h.usecase.GetQuoteRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequestDetail(detail))
}

// AcceptVendorQuote godoc
// @Summary      Accept a vendor quote
// @Description  Accepts one response, rejects its siblings and completes the request.
// @Tags         quote-requests
// @Produce      json
// @Param        id           path      string  true  "quote request id"
// @Param        response_id  path      string  true  "quote response id"
// @Success      200          {object}  response.QuoteRequestResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/responses/{response_id}/accept [patch]
func (h *QuoteRequestHandler) AcceptVendorQuote(c *gin.Context) {
	h.decideVendorQuote(c, "accept", h.usecase.AcceptVendorQuote)
}

// RejectVendorQuote godoc
// @Summary      Reject a vendor quote
// @Tags         quote-requests
// @Produce      json
// @Param        id           path      string  true  "quote request id"
// @Param        response_id  path      string  true  "quote response id"
// @Success      200          {object}  response.QuoteRequestResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/responses/{response_id}/reject [patch]
func (h *QuoteRequestHandler) RejectVendorQuote(c *gin.Context) {
	h.decideVendorQuote(c, "reject", h.usecase.RejectVendorQuote)
}

func (h *QuoteRequestHandler) decideVendorQuote(
	c *gin.Context,
	action string,
	decide func(ctx context.Context, requestID, responseID string) (entities.QuoteRequestDetail, error),
) {
	requestID := c.Param("id")
	responseID := c.Param("response_id")

	detail, err := decide(c.Request.Context(), requestID, responseID)
	if err != nil {
		log.Printf("[quote][handler] %s failed request_id=%s response_id=%s err=%v", action, requestID, responseID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequestDetail(detail))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidVendorID),
		errors.Is(err, usecase.ErrInvalidQuoteRequestID), errors.Is(err, usecase.ErrInvalidQuoteResponseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteResponseNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_RESPONSE_NOT_FOUND", "Quote response not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteRequestClosed):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_CLOSED", "Quote request is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_ACCEPTED", "Quote request already has an accepted quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateVendorQuote):
		return pkg.NewDomainErrorSimple("DUPLICATE_VENDOR_QUOTE", "Vendor already quoted this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQuoteTransition):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TRANSITION", "Quote status change not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
