package usecase

import (
	"context"
	"log"
	"os"
	"solar_quotes/internal/domain/entities"
	"strings"
	"time"
)

// SeedDemoData fills an empty store with demo requests and vendor quotes.
// Failures are logged and never returned; seeding is a convenience for demos.
func (u *QuoteMatchingUseCase) SeedDemoData(ctx context.Context) {
	if !u.isEmpty() {
		log.Printf("[quote][seed] store not empty; skipping demo data")
		return
	}

	size := 8.5
	roof := 1200.0
	requests := []NewQuoteRequest{
		{
			UserID:       "demo-user-1",
			Contact:      entities.ContactInfo{Name: "Ana Souza", Email: "ana@example.com", Phone: "+55 11 90000-0001"},
			PropertyType: "residential",
			Address:      "Rua das Flores 120",
			City:         "Sao Paulo",
			MonthlyBill:  850,
			BudgetRange:  "20k-30k",
			SystemSize:   &size,
			RoofArea:     &roof,
			Description:  "Two-storey house, south facing roof.",
		},
		{
			UserID:       "demo-user-2",
			Contact:      entities.ContactInfo{Name: "Padaria Central", Email: "contato@padaria.example.com"},
			PropertyType: "commercial",
			Address:      "Av. Brasil 900",
			City:         "Campinas",
			MonthlyBill:  2400,
			BudgetRange:  "50k+",
			Description:  "Bakery with ovens running all day.",
		},
		{
			UserID:       "demo-user-1",
			Contact:      entities.ContactInfo{Name: "Ana Souza", Email: "ana@example.com"},
			PropertyType: "residential",
			Address:      "Rua do Lago 45",
			City:         "Santos",
			MonthlyBill:  320,
			BudgetRange:  "under-15k",
			Description:  "Beach house, occasional use.",
		},
	}

	created := make([]entities.QuoteRequest, 0, len(requests))
	for _, in := range requests {
		r, err := u.SubmitQuoteRequest(ctx, in)
		if err != nil {
			log.Printf("[quote][seed] request seed failed user_id=%s err=%v", in.UserID, err)
			continue
		}
		created = append(created, r)
	}
	if len(created) == 0 {
		return
	}

	validUntil := time.Now().UTC().AddDate(0, 1, 0)
	quotes := []NewVendorQuote{
		{
			RequestID:             created[0].ID,
			VendorID:              "demo-vendor-1",
			VendorName:            "SunBright Solar",
			VendorEmail:           "sales@sunbright.example.com",
			VendorRating:          4.8,
			VendorReviewCount:     127,
			SystemSize:            8.4,
			TotalPrice:            25200,
			PricePerWatt:          3.0,
			Financing:             entities.FinancingTerms{BNPLAvailable: true, DownPayment: 2500, MonthlyPayment: 420, TermMonths: 60, InterestRate: 1.2},
			InstallationTimeframe: "2-3 weeks",
			Equipment:             entities.EquipmentInfo{PanelBrand: "Canadian Solar", PanelModel: "HiKu6", InverterBrand: "Growatt", WarrantyYears: 25},
			Highlights:            []string{"25-year warranty", "Free monitoring app"},
			Terms:                 "Price valid for 30 days.",
			ValidUntil:            validUntil,
		},
		{
			RequestID:             created[0].ID,
			VendorID:              "demo-vendor-2",
			VendorName:            "Verde Energia",
			VendorEmail:           "orcamentos@verde.example.com",
			VendorRating:          4.5,
			VendorReviewCount:     64,
			SystemSize:            8.8,
			TotalPrice:            27100,
			PricePerWatt:          3.08,
			Financing:             entities.FinancingTerms{MonthlyPayment: 510, TermMonths: 48, InterestRate: 1.5},
			InstallationTimeframe: "4 weeks",
			Equipment:             entities.EquipmentInfo{PanelBrand: "JA Solar", PanelModel: "DeepBlue 3.0", InverterBrand: "Fronius", WarrantyYears: 20},
			Highlights:            []string{"Local installer", "BNPL on request"},
			Terms:                 "Includes permits and grid connection.",
			ValidUntil:            validUntil,
		},
	}
	for _, in := range quotes {
		if _, err := u.SubmitVendorQuote(ctx, in); err != nil {
			log.Printf("[quote][seed] vendor quote seed failed request_id=%s vendor_id=%s err=%v", in.RequestID, in.VendorID, err)
		}
	}
	log.Printf("[quote][seed] demo data loaded requests=%d", len(created))
}

// IsDemoSeedEnabled reports whether SEED_DEMO_DATA asks for demo data.
func IsDemoSeedEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SEED_DEMO_DATA"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
