package response

import (
	"solar_quotes/internal/domain/entities"
	"time"
)

// QuoteRequestResponse is a quote request with its vendor responses embedded
// in submission order. urgency and quotes_received are derived fields.
type QuoteRequestResponse struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"user_id"`
	Contact         entities.ContactInfo    `json:"contact"`
	PropertyType    string                  `json:"property_type"`
	Address         string                  `json:"address"`
	City            string                  `json:"city"`
	MonthlyBill     float64                 `json:"monthly_bill"`
	BudgetRange     string                  `json:"budget_range"`
	SystemSize      *float64                `json:"system_size,omitempty"`
	RoofArea        *float64                `json:"roof_area,omitempty"`
	Description     string                  `json:"description"`
	Status          string                  `json:"status"`
	Urgency         string                  `json:"urgency"`
	QuotesRequested int                     `json:"quotes_requested"`
	QuotesReceived  int                     `json:"quotes_received"`
	VendorResponses []QuoteResponseResponse `json:"vendor_responses"`
	CreatedAt       time.Time               `json:"created_at"`
}

// FromQuoteRequest maps a bare request; vendor_responses is left empty.
func FromQuoteRequest(r entities.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Contact:         r.Contact,
		PropertyType:    r.PropertyType,
		Address:         r.Address,
		City:            r.City,
		MonthlyBill:     r.MonthlyBill,
		BudgetRange:     r.BudgetRange,
		SystemSize:      r.SystemSize,
		RoofArea:        r.RoofArea,
		Description:     r.Description,
		Status:          string(r.Status),
		Urgency:         string(r.Urgency()),
		QuotesRequested: r.QuotesRequested,
		QuotesReceived:  r.QuotesReceived(),
		VendorResponses: []QuoteResponseResponse{},
		CreatedAt:       r.CreatedAt,
	}
}

func FromQuoteRequestDetail(d entities.QuoteRequestDetail) QuoteRequestResponse {
	res := FromQuoteRequest(d.Request)
	res.VendorResponses = FromQuoteResponses(d.Responses)
	return res
}

func FromQuoteRequestDetails(ds []entities.QuoteRequestDetail) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromQuoteRequestDetail(d))
	}
	return out
}
