package request

import (
	"testing"
	"time"
)

func TestCreateQuoteRequestRequest_ToNewQuoteRequest(t *testing.T) {
	size := 7.2
	r := CreateQuoteRequestRequest{
		UserID:       " user-1 ",
		Contact:      ContactRequest{Name: " Ana ", Email: "ana@example.com ", Phone: " 81 9999"},
		PropertyType: "residential",
		Address:      " Rua A 1 ",
		City:         "Recife",
		MonthlyBill:  850,
		BudgetRange:  "20k-30k",
		SystemSize:   &size,
		Description:  "south facing roof",
	}

	in := r.ToNewQuoteRequest()
	if in.UserID != "user-1" {
		t.Fatalf("expected trimmed user id, got %q", in.UserID)
	}
	if in.Contact.Name != "Ana" || in.Contact.Email != "ana@example.com" || in.Contact.Phone != "81 9999" {
		t.Fatalf("unexpected contact: %+v", in.Contact)
	}
	if in.Address != "Rua A 1" || in.City != "Recife" || in.MonthlyBill != 850 {
		t.Fatalf("unexpected property fields: %+v", in)
	}
	if in.SystemSize == nil || *in.SystemSize != 7.2 || in.RoofArea != nil {
		t.Fatalf("unexpected optional fields: %+v", in)
	}
}

func TestCreateQuoteRequestRequest_NormalizesPhone(t *testing.T) {
	t.Setenv("PHONE_DEFAULT_REGION", "BR")
	in := CreateQuoteRequestRequest{UserID: "user-1", Contact: ContactRequest{Phone: "(81) 99876-5432"}}.ToNewQuoteRequest()
	if in.Contact.Phone != "+5581998765432" {
		t.Fatalf("expected E.164 phone, got %q", in.Contact.Phone)
	}
}

func TestSubmitVendorQuoteRequest_ToNewVendorQuote(t *testing.T) {
	valid := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	r := SubmitVendorQuoteRequest{
		VendorID:     " vendor-1 ",
		VendorName:   "SunBright",
		VendorPhone:  "+1 650-253-0000",
		VendorRating: 4.8,
		SystemSize:   6.5,
		TotalPrice:   19500,
		PricePerWatt: 3,
		Financing:    FinancingRequest{BNPLAvailable: true, DownPayment: 1500, TermMonths: 48},
		Equipment:    EquipmentRequest{PanelBrand: " JA Solar ", WarrantyYears: 25},
		Highlights:   []string{" monitoring app ", "", "   ", "25y warranty"},
		ValidUntil:   valid,
	}

	in := r.ToNewVendorQuote(" req-1 ")
	if in.RequestID != "req-1" || in.VendorID != "vendor-1" {
		t.Fatalf("unexpected ids: %q %q", in.RequestID, in.VendorID)
	}
	if in.VendorPhone != "+16502530000" {
		t.Fatalf("unexpected vendor phone: %q", in.VendorPhone)
	}
	if !in.Financing.BNPLAvailable || in.Financing.DownPayment != 1500 || in.Financing.TermMonths != 48 {
		t.Fatalf("unexpected financing: %+v", in.Financing)
	}
	if in.Equipment.PanelBrand != "JA Solar" || in.Equipment.WarrantyYears != 25 {
		t.Fatalf("unexpected equipment: %+v", in.Equipment)
	}
	if len(in.Highlights) != 2 || in.Highlights[0] != "monitoring app" || in.Highlights[1] != "25y warranty" {
		t.Fatalf("unexpected highlights: %#v", in.Highlights)
	}
	if !in.ValidUntil.Equal(valid) {
		t.Fatalf("unexpected valid_until: %v", in.ValidUntil)
	}
}
