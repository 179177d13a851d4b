package entities

import "testing"

func TestUrgencyForMonthlyBill(t *testing.T) {
	cases := []struct {
		bill float64
		want Urgency
	}{
		{bill: 1200, want: UrgencyHigh},
		{bill: 1000.01, want: UrgencyHigh},
		{bill: 1000, want: UrgencyMedium},
		{bill: 850, want: UrgencyMedium},
		{bill: 600, want: UrgencyMedium},
		{bill: 500, want: UrgencyLow},
		{bill: 300, want: UrgencyLow},
		{bill: 0, want: UrgencyLow},
		{bill: -50, want: UrgencyLow},
	}

	for _, tc := range cases {
		if got := UrgencyForMonthlyBill(tc.bill); got != tc.want {
			t.Fatalf("bill %v: expected %s, got %s", tc.bill, tc.want, got)
		}
	}
}

func TestQuoteRequest_DerivedFields(t *testing.T) {
	r := QuoteRequest{MonthlyBill: 1500, ResponseIDs: []string{"resp-1", "resp-2"}}

	if r.Urgency() != UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", r.Urgency())
	}
	if r.QuotesReceived() != 2 {
		t.Fatalf("expected 2 quotes received, got %d", r.QuotesReceived())
	}
	if !r.HasResponse("resp-2") {
		t.Fatalf("expected resp-2 to belong to request")
	}
	if r.HasResponse("resp-3") {
		t.Fatalf("resp-3 should not belong to request")
	}
}
