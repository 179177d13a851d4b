package entities

// VendorQuoteStats summarizes a vendor's quoting activity for its dashboard.
type VendorQuoteStats struct {
	VendorID            string  `json:"vendor_id"`
	TotalQuotes         int     `json:"total_quotes"`
	Submitted           int     `json:"submitted"`
	Accepted            int     `json:"accepted"`
	Rejected            int     `json:"rejected"`
	WinRate             float64 `json:"win_rate"`
	AcceptedValue       float64 `json:"accepted_value"`
	AverageAcceptedSize float64 `json:"average_accepted_size"`
}
