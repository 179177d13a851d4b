package routes

import (
	"solar_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteRequests = "/quote-requests"
	PathVendors       = "/vendors"
	PathDeposits      = "/deposits"
)

func addQuoteRoutes(rg *gin.RouterGroup, requestHandler *handlers.QuoteRequestHandler, vendorHandler *handlers.VendorQuoteHandler) {
	requests := rg.Group(PathQuoteRequests)
	{
		// Customer side.
		requests.POST("", requestHandler.CreateQuoteRequest)
		requests.GET("", requestHandler.ListUserQuoteRequests)
		requests.GET("/:id", requestHandler.GetQuoteRequest)
		requests.PATCH("/:id/responses/:response_id/accept", requestHandler.AcceptVendorQuote)
		requests.PATCH("/:id/responses/:response_id/reject", requestHandler.RejectVendorQuote)

		// Vendor side.
		requests.GET("/available", vendorHandler.ListAvailableQuoteRequests)
		requests.POST("/:id/responses", vendorHandler.SubmitVendorQuote)
	}

	vendors := rg.Group(PathVendors)
	{
		vendors.GET("/:vendor_id/quote-responses", vendorHandler.ListVendorQuoteResponses)
		vendors.GET("/:vendor_id/stats", vendorHandler.GetVendorStats)
	}
}

func addDepositRoutes(rg *gin.RouterGroup, depositHandler *handlers.DepositPaymentHandler) {
	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:quote_request_id", depositHandler.CreateDeposit)
		deposits.GET("/:quote_request_id", depositHandler.GetDeposit)
	}
}
