package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestQuoteStatsUseCase_GetVendorStats(t *testing.T) {
	t.Run("invalid vendor", func(t *testing.T) {
		uc := NewQuoteStatsUseCase(newTestQuoteStore(t))
		if _, err := uc.GetVendorStats(context.Background(), ""); !errors.Is(err, ErrInvalidVendorID) {
			t.Fatalf("expected ErrInvalidVendorID, got %v", err)
		}
	})

	t.Run("no quotes", func(t *testing.T) {
		uc := NewQuoteStatsUseCase(newTestQuoteStore(t))
		stats, err := uc.GetVendorStats(context.Background(), "vendor-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalQuotes != 0 || stats.WinRate != 0 || stats.AverageAcceptedSize != 0 {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	})

	t.Run("mixed outcomes", func(t *testing.T) {
		store := newTestQuoteStore(t)
		won := submitRequest(t, store, "user-1", 900)
		lost := submitRequest(t, store, "user-2", 900)
		open := submitRequest(t, store, "user-3", 900)

		mine := submitQuote(t, store, won.ID, "vendor-1", 20000)
		submitQuote(t, store, won.ID, "vendor-2", 25000)
		submitQuote(t, store, lost.ID, "vendor-1", 30000)
		theirs := submitQuote(t, store, lost.ID, "vendor-2", 18000)
		submitQuote(t, store, open.ID, "vendor-1", 15000)

		if _, err := store.AcceptVendorQuote(context.Background(), won.ID, mine.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.AcceptVendorQuote(context.Background(), lost.ID, theirs.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stats, err := NewQuoteStatsUseCase(store).GetVendorStats(context.Background(), " vendor-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.VendorID != "vendor-1" || stats.TotalQuotes != 3 {
			t.Fatalf("unexpected totals: %+v", stats)
		}
		if stats.Submitted != 1 || stats.Accepted != 1 || stats.Rejected != 1 {
			t.Fatalf("unexpected counts: %+v", stats)
		}
		if stats.WinRate != 0.5 || stats.AcceptedValue != 20000 || stats.AverageAcceptedSize != 6 {
			t.Fatalf("unexpected aggregates: %+v", stats)
		}
	})
}
