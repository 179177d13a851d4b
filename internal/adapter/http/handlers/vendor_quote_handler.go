package handlers

import (
	"log"
	"net/http"

	request "solar_quotes/internal/adapter/http/dto/request"
	response "solar_quotes/internal/adapter/http/dto/response"
	"solar_quotes/internal/usecase"
	"solar_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVendorQuotePayload = pkg.NewDomainErrorSimple("INVALID_VENDOR_QUOTE_INPUT", "Invalid vendor quote payload", http.StatusBadRequest)
)

// VendorQuoteHandler serves the vendor side: browsing open requests,
// quoting them and reviewing past quotes.

type VendorQuoteHandler struct {
	quotes usecase.IQuoteMatchingUseCase
	stats  usecase.IQuoteStatsUseCase
}

func NewVendorQuoteHandler(quotes usecase.IQuoteMatchingUseCase, stats usecase.IQuoteStatsUseCase) *VendorQuoteHandler {
	return &VendorQuoteHandler{quotes: quotes, stats: stats}
}

// ListAvailableQuoteRequests godoc
// @Summary      Quote requests a vendor can still answer
// @Tags         vendors
// @Produce      json
// @Param        vendor_id  query     string  false  "vendor id; omitted lists every pending request"
// @Success      200        {array}   response.QuoteRequestResponse
// @Router       /quote-requests/available [get]
func (h *VendorQuoteHandler) ListAvailableQuoteRequests(c *gin.Context) {
	details, err := h.quotes.GetAvailableQuoteRequests(c.Request.Context(), c.Query("vendor_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequestDetails(details))
}

// SubmitVendorQuote godoc
// @Summary      Submit a vendor quote
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "quote request id"
// @Param        payload  body      request.SubmitVendorQuoteRequest  true  "vendor quote"
// @Success      201      {object}  response.QuoteResponseResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/responses [post]
func (h *VendorQuoteHandler) SubmitVendorQuote(c *gin.Context) {
	var payload request.SubmitVendorQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorQuotePayload.HTTPStatus, errInvalidVendorQuotePayload.ToHTTPError())
		return
	}

	created, err := h.quotes.SubmitVendorQuote(c.Request.Context(), payload.ToNewVendorQuote(c.Param("id")))
	if err != nil {
		log.Printf("[quote][handler] submit vendor quote failed request_id=%s vendor_id=%s err=%v", c.Param("id"), payload.VendorID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteResponse(created))
}

// ListVendorQuoteResponses godoc
// @Summary      Quotes submitted by a vendor
// @Tags         vendors
// @Produce      json
// @Param        vendor_id  path      string  true  "vendor id"
// @Success      200        {array}   response.QuoteResponseResponse
// @Router       /vendors/{vendor_id}/quote-responses [get]
func (h *VendorQuoteHandler) ListVendorQuoteResponses(c *gin.Context) {
	responses, err := h.quotes.GetVendorQuoteResponses(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteResponses(responses))
}

// GetVendorStats godoc
// @Summary      Vendor dashboard counters
// @Tags         vendors
// @Produce      json
// @Param        vendor_id  path      string  true  "vendor id"
// @Success      200        {object}  response.VendorStatsResponse
// @Router       /vendors/{vendor_id}/stats [get]
func (h *VendorQuoteHandler) GetVendorStats(c *gin.Context) {
	stats, err := h.stats.GetVendorStats(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendorStats(stats))
}
