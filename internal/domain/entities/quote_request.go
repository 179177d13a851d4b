package entities

import "time"

// QuoteRequestStatus represents the lifecycle of a customer quote request.
//
// Transitions only move forward:
//
//	pending --(first vendor response)--> active --(accept)--> completed
type QuoteRequestStatus string

const (
	QuoteRequestStatusPending   QuoteRequestStatus = "pending"
	QuoteRequestStatusActive    QuoteRequestStatus = "active"
	QuoteRequestStatusCompleted QuoteRequestStatus = "completed"
)

// Urgency is a coarse priority label derived from the monthly electricity bill.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

const (
	highUrgencyBillThreshold   = 1000.0
	mediumUrgencyBillThreshold = 500.0

	// DefaultQuotesRequested is how many vendor quotes a new request asks for.
	DefaultQuotesRequested = 5
)

// UrgencyForMonthlyBill maps a monthly bill to its urgency tier.
// Both thresholds are strict: a bill of exactly 1000 is medium, 500 is low.
func UrgencyForMonthlyBill(bill float64) Urgency {
	switch {
	case bill > highUrgencyBillThreshold:
		return UrgencyHigh
	case bill > mediumUrgencyBillThreshold:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// QuoteRequest is a customer's ask for solar installation quotes.
//
// Ownership model:
//   - Responses are stored once, keyed by id, in the quote store.
//   - ResponseIDs keeps the order in which vendors answered this request.
//
// Urgency and QuotesReceived are derived on read and never stored.
type QuoteRequest struct {
	ID      string      `json:"id"`
	UserID  string      `json:"user_id"`
	Contact ContactInfo `json:"contact"`

	PropertyType string `json:"property_type"`
	Address      string `json:"address"`
	City         string `json:"city"`

	MonthlyBill float64  `json:"monthly_bill"`
	BudgetRange string   `json:"budget_range"`
	SystemSize  *float64 `json:"system_size,omitempty"`
	RoofArea    *float64 `json:"roof_area,omitempty"`
	Description string   `json:"description"`

	Status          QuoteRequestStatus `json:"status"`
	QuotesRequested int                `json:"quotes_requested"`
	ResponseIDs     []string           `json:"response_ids"`
	CreatedAt       time.Time          `json:"created_at"`
}

func (r QuoteRequest) Urgency() Urgency {
	return UrgencyForMonthlyBill(r.MonthlyBill)
}

func (r QuoteRequest) QuotesReceived() int {
	return len(r.ResponseIDs)
}

// HasResponse reports whether responseID was submitted against this request.
func (r QuoteRequest) HasResponse(responseID string) bool {
	for _, id := range r.ResponseIDs {
		if id == responseID {
			return true
		}
	}
	return false
}

// QuoteRequestDetail is a request joined with its responses in submission order.
type QuoteRequestDetail struct {
	Request   QuoteRequest
	Responses []QuoteResponse
}
