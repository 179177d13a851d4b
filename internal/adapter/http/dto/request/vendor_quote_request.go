package request

import (
	"strings"
	"time"

	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/infrastructure/phone"
	"solar_quotes/internal/usecase"
)

type FinancingRequest struct {
	BNPLAvailable  bool    `json:"bnpl_available"`
	DownPayment    float64 `json:"down_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TermMonths     int     `json:"term_months"`
	InterestRate   float64 `json:"interest_rate"`
}

type EquipmentRequest struct {
	PanelBrand    string `json:"panel_brand"`
	PanelModel    string `json:"panel_model"`
	InverterBrand string `json:"inverter_brand"`
	WarrantyYears int    `json:"warranty_years"`
}

// SubmitVendorQuoteRequest is the vendor payload for
// POST /quote-requests/:id/responses. The request id comes from the path.
type SubmitVendorQuoteRequest struct {
	VendorID          string  `json:"vendor_id" binding:"required"`
	VendorName        string  `json:"vendor_name"`
	VendorEmail       string  `json:"vendor_email"`
	VendorPhone       string  `json:"vendor_phone"`
	VendorRating      float64 `json:"vendor_rating"`
	VendorReviewCount int     `json:"vendor_review_count"`

	SystemSize            float64          `json:"system_size"`
	TotalPrice            float64          `json:"total_price"`
	PricePerWatt          float64          `json:"price_per_watt"`
	Financing             FinancingRequest `json:"financing"`
	InstallationTimeframe string           `json:"installation_timeframe"`
	Equipment             EquipmentRequest `json:"equipment"`
	Highlights            []string         `json:"highlights"`
	Terms                 string           `json:"terms"`
	ValidUntil            time.Time        `json:"valid_until"`
}

func (r SubmitVendorQuoteRequest) ToNewVendorQuote(requestID string) usecase.NewVendorQuote {
	highlights := make([]string, 0, len(r.Highlights))
	for _, h := range r.Highlights {
		if h = strings.TrimSpace(h); h != "" {
			highlights = append(highlights, h)
		}
	}

	return usecase.NewVendorQuote{
		RequestID:         strings.TrimSpace(requestID),
		VendorID:          strings.TrimSpace(r.VendorID),
		VendorName:        strings.TrimSpace(r.VendorName),
		VendorEmail:       strings.TrimSpace(r.VendorEmail),
		VendorPhone:       phone.NormalizeE164(r.VendorPhone),
		VendorRating:      r.VendorRating,
		VendorReviewCount: r.VendorReviewCount,
		SystemSize:        r.SystemSize,
		TotalPrice:        r.TotalPrice,
		PricePerWatt:      r.PricePerWatt,
		Financing: entities.FinancingTerms{
			BNPLAvailable:  r.Financing.BNPLAvailable,
			DownPayment:    r.Financing.DownPayment,
			MonthlyPayment: r.Financing.MonthlyPayment,
			TermMonths:     r.Financing.TermMonths,
			InterestRate:   r.Financing.InterestRate,
		},
		InstallationTimeframe: strings.TrimSpace(r.InstallationTimeframe),
		Equipment: entities.EquipmentInfo{
			PanelBrand:    strings.TrimSpace(r.Equipment.PanelBrand),
			PanelModel:    strings.TrimSpace(r.Equipment.PanelModel),
			InverterBrand: strings.TrimSpace(r.Equipment.InverterBrand),
			WarrantyYears: r.Equipment.WarrantyYears,
		},
		Highlights: highlights,
		Terms:      r.Terms,
		ValidUntil: r.ValidUntil,
	}
}
