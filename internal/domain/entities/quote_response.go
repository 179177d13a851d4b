package entities

import "time"

// QuoteResponseStatus represents the lifecycle of a vendor quote.
//
// draft is declared for completeness; responses enter the store as submitted.
type QuoteResponseStatus string

const (
	QuoteResponseStatusDraft     QuoteResponseStatus = "draft"
	QuoteResponseStatusSubmitted QuoteResponseStatus = "submitted"
	QuoteResponseStatusAccepted  QuoteResponseStatus = "accepted"
	QuoteResponseStatusRejected  QuoteResponseStatus = "rejected"
)

// FinancingTerms describes the payment options offered with a quote (cash, BNPL, loan).
type FinancingTerms struct {
	BNPLAvailable  bool    `json:"bnpl_available"`
	DownPayment    float64 `json:"down_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TermMonths     int     `json:"term_months"`
	InterestRate   float64 `json:"interest_rate"`
}

type EquipmentInfo struct {
	PanelBrand    string `json:"panel_brand"`
	PanelModel    string `json:"panel_model"`
	InverterBrand string `json:"inverter_brand"`
	WarrantyYears int    `json:"warranty_years"`
}

// QuoteResponse is one vendor's priced offer against a quote request.
// Vendor fields are a snapshot taken at submission time.
type QuoteResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id"`

	VendorID          string  `json:"vendor_id"`
	VendorName        string  `json:"vendor_name"`
	VendorEmail       string  `json:"vendor_email"`
	VendorPhone       string  `json:"vendor_phone"`
	VendorRating      float64 `json:"vendor_rating"`
	VendorReviewCount int     `json:"vendor_review_count"`

	SystemSize   float64 `json:"system_size"`
	TotalPrice   float64 `json:"total_price"`
	PricePerWatt float64 `json:"price_per_watt"`

	Financing             FinancingTerms `json:"financing"`
	InstallationTimeframe string         `json:"installation_timeframe"`
	Equipment             EquipmentInfo  `json:"equipment"`
	Highlights            []string       `json:"highlights"`
	Terms                 string         `json:"terms"`
	ValidUntil            time.Time      `json:"valid_until"`

	Status    QuoteResponseStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}
