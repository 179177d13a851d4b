package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solar_quotes/internal/adapter/http/handlers/mocks"
	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVendorQuoteHandler_SubmitVendorQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing vendor id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quote-requests/:id/responses", h.SubmitVendorQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/req-1/responses", bytes.NewBufferString(`{"total_price":19500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quote-requests/:id/responses", h.SubmitVendorQuote)

		quotes.EXPECT().SubmitVendorQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteResponse{}, usecase.ErrDuplicateVendorQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/req-1/responses", bytes.NewBufferString(`{"vendor_id":"vendor-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("closed request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quote-requests/:id/responses", h.SubmitVendorQuote)

		quotes.EXPECT().SubmitVendorQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteResponse{}, usecase.ErrQuoteRequestClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/req-1/responses", bytes.NewBufferString(`{"vendor_id":"vendor-3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success uses path request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quote-requests/:id/responses", h.SubmitVendorQuote)

		quotes.EXPECT().SubmitVendorQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.NewVendorQuote) (entities.QuoteResponse, error) {
			if in.RequestID != "req-1" || in.VendorID != "vendor-1" || in.TotalPrice != 19500 || !in.Financing.BNPLAvailable {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.QuoteResponse{
				ID:         "resp-1",
				RequestID:  in.RequestID,
				VendorID:   in.VendorID,
				TotalPrice: in.TotalPrice,
				Financing:  in.Financing,
				Status:     entities.QuoteResponseStatusSubmitted,
				CreatedAt:  time.Now().UTC(),
			}, nil
		})

		body := `{"vendor_id":"vendor-1","total_price":19500,"financing":{"bnpl_available":true,"term_months":48},"valid_until":"2026-12-31T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests/req-1/responses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["id"] != "resp-1" || res["status"] != "submitted" || res["request_id"] != "req-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVendorQuoteHandler_Queries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("available requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/quote-requests/available", h.ListAvailableQuoteRequests)

		open := entities.QuoteRequestDetail{Request: entities.QuoteRequest{ID: "req-2", MonthlyBill: 300, Status: entities.QuoteRequestStatusPending}}
		quotes.EXPECT().GetAvailableQuoteRequests(gomock.Any(), "vendor-1").Return([]entities.QuoteRequestDetail{open}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/available?vendor_id=vendor-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "req-2" || body[0]["urgency"] != "low" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("available without vendor id lists every pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/quote-requests/available", h.ListAvailableQuoteRequests)

		quotes.EXPECT().GetAvailableQuoteRequests(gomock.Any(), "").Return([]entities.QuoteRequestDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-requests/available", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("vendor responses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteMatchingUseCase(ctrl)
		h := NewVendorQuoteHandler(quotes, mocks.NewMockIQuoteStatsUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/vendors/:vendor_id/quote-responses", h.ListVendorQuoteResponses)

		quotes.EXPECT().GetVendorQuoteResponses(gomock.Any(), "vendor-1").Return([]entities.QuoteResponse{
			{ID: "resp-1", VendorID: "vendor-1", Status: entities.QuoteResponseStatusAccepted},
			{ID: "resp-3", VendorID: "vendor-1", Status: entities.QuoteResponseStatusSubmitted},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vendors/vendor-1/quote-responses", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "resp-1" || body[1]["id"] != "resp-3" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("vendor stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIQuoteStatsUseCase(ctrl)
		h := NewVendorQuoteHandler(mocks.NewMockIQuoteMatchingUseCase(ctrl), stats)

		r := gin.New()
		r.GET("/v1/vendors/:vendor_id/stats", h.GetVendorStats)

		stats.EXPECT().GetVendorStats(gomock.Any(), "vendor-1").Return(entities.VendorQuoteStats{VendorID: "vendor-1", TotalQuotes: 3, Accepted: 1, Rejected: 1, WinRate: 0.5}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vendors/vendor-1/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["win_rate"] != 0.5 || body["total_quotes"] != 3.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
