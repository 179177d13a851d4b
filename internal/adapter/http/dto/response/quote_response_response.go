package response

import (
	"solar_quotes/internal/domain/entities"
	"time"
)

type QuoteResponseResponse struct {
	ID                string  `json:"id"`
	RequestID         string  `json:"request_id"`
	VendorID          string  `json:"vendor_id"`
	VendorName        string  `json:"vendor_name"`
	VendorEmail       string  `json:"vendor_email"`
	VendorPhone       string  `json:"vendor_phone"`
	VendorRating      float64 `json:"vendor_rating"`
	VendorReviewCount int     `json:"vendor_review_count"`

	SystemSize            float64                 `json:"system_size"`
	TotalPrice            float64                 `json:"total_price"`
	PricePerWatt          float64                 `json:"price_per_watt"`
	Financing             entities.FinancingTerms `json:"financing"`
	InstallationTimeframe string                  `json:"installation_timeframe"`
	Equipment             entities.EquipmentInfo  `json:"equipment"`
	Highlights            []string                `json:"highlights"`
	Terms                 string                  `json:"terms"`
	ValidUntil            time.Time               `json:"valid_until"`
	Status                string                  `json:"status"`
	CreatedAt             time.Time               `json:"created_at"`
}

func FromQuoteResponse(r entities.QuoteResponse) QuoteResponseResponse {
	highlights := r.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return QuoteResponseResponse{
		ID:                    r.ID,
		RequestID:             r.RequestID,
		VendorID:              r.VendorID,
		VendorName:            r.VendorName,
		VendorEmail:           r.VendorEmail,
		VendorPhone:           r.VendorPhone,
		VendorRating:          r.VendorRating,
		VendorReviewCount:     r.VendorReviewCount,
		SystemSize:            r.SystemSize,
		TotalPrice:            r.TotalPrice,
		PricePerWatt:          r.PricePerWatt,
		Financing:             r.Financing,
		InstallationTimeframe: r.InstallationTimeframe,
		Equipment:             r.Equipment,
		Highlights:            highlights,
		Terms:                 r.Terms,
		ValidUntil:            r.ValidUntil,
		Status:                string(r.Status),
		CreatedAt:             r.CreatedAt,
	}
}

func FromQuoteResponses(rs []entities.QuoteResponse) []QuoteResponseResponse {
	out := make([]QuoteResponseResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromQuoteResponse(r))
	}
	return out
}
