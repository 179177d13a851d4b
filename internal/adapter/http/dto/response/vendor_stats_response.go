package response

import "solar_quotes/internal/domain/entities"

type VendorStatsResponse struct {
	VendorID            string  `json:"vendor_id"`
	TotalQuotes         int     `json:"total_quotes"`
	Submitted           int     `json:"submitted"`
	Accepted            int     `json:"accepted"`
	Rejected            int     `json:"rejected"`
	WinRate             float64 `json:"win_rate"`
	AcceptedValue       float64 `json:"accepted_value"`
	AverageAcceptedSize float64 `json:"average_accepted_size"`
}

func FromVendorStats(s entities.VendorQuoteStats) VendorStatsResponse {
	return VendorStatsResponse{
		VendorID:            s.VendorID,
		TotalQuotes:         s.TotalQuotes,
		Submitted:           s.Submitted,
		Accepted:            s.Accepted,
		Rejected:            s.Rejected,
		WinRate:             s.WinRate,
		AcceptedValue:       s.AcceptedValue,
		AverageAcceptedSize: s.AverageAcceptedSize,
	}
}
