package request

import (
	"strings"

	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/infrastructure/phone"
	"solar_quotes/internal/usecase"
)

type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateQuoteRequestRequest is the customer payload for POST /quote-requests.
type CreateQuoteRequestRequest struct {
	UserID       string         `json:"user_id" binding:"required"`
	Contact      ContactRequest `json:"contact"`
	PropertyType string         `json:"property_type"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	MonthlyBill  float64        `json:"monthly_bill"`
	BudgetRange  string         `json:"budget_range"`
	SystemSize   *float64       `json:"system_size"`
	RoofArea     *float64       `json:"roof_area"`
	Description  string         `json:"description"`
}

// ToNewQuoteRequest trims text fields and normalizes the contact phone to E.164.
func (r CreateQuoteRequestRequest) ToNewQuoteRequest() usecase.NewQuoteRequest {
	return usecase.NewQuoteRequest{
		UserID: strings.TrimSpace(r.UserID),
		Contact: entities.ContactInfo{
			Name:  strings.TrimSpace(r.Contact.Name),
			Email: strings.TrimSpace(r.Contact.Email),
			Phone: phone.NormalizeE164(r.Contact.Phone),
		},
		PropertyType: strings.TrimSpace(r.PropertyType),
		Address:      strings.TrimSpace(r.Address),
		City:         strings.TrimSpace(r.City),
		MonthlyBill:  r.MonthlyBill,
		BudgetRange:  strings.TrimSpace(r.BudgetRange),
		SystemSize:   r.SystemSize,
		RoofArea:     r.RoofArea,
		Description:  r.Description,
	}
}
