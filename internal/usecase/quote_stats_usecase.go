package usecase

import (
	"context"
	"solar_quotes/internal/domain/entities"
	"strings"
)

// IQuoteStatsUseCase aggregates vendor quote activity.

type IQuoteStatsUseCase interface {
	GetVendorStats(ctx context.Context, vendorID string) (entities.VendorQuoteStats, error)
}

type QuoteStatsUseCase struct {
	quotes IQuoteMatchingUseCase
}

var _ IQuoteStatsUseCase = (*QuoteStatsUseCase)(nil)

func NewQuoteStatsUseCase(quotes IQuoteMatchingUseCase) *QuoteStatsUseCase {
	return &QuoteStatsUseCase{quotes: quotes}
}

// GetVendorStats computes counts from the vendor's responses.
// WinRate is accepted over decided (accepted + rejected) quotes, 0 when none were decided.
func (u *QuoteStatsUseCase) GetVendorStats(ctx context.Context, vendorID string) (entities.VendorQuoteStats, error) {
	responses, err := u.quotes.GetVendorQuoteResponses(ctx, vendorID)
	if err != nil {
		return entities.VendorQuoteStats{}, err
	}

	stats := entities.VendorQuoteStats{VendorID: strings.TrimSpace(vendorID), TotalQuotes: len(responses)}
	acceptedSize := 0.0
	for _, r := range responses {
		switch r.Status {
		case entities.QuoteResponseStatusSubmitted:
			stats.Submitted++
		case entities.QuoteResponseStatusAccepted:
			stats.Accepted++
			stats.AcceptedValue += r.TotalPrice
			acceptedSize += r.SystemSize
		case entities.QuoteResponseStatusRejected:
			stats.Rejected++
		}
	}

	if decided := stats.Accepted + stats.Rejected; decided > 0 {
		stats.WinRate = float64(stats.Accepted) / float64(decided)
	}
	if stats.Accepted > 0 {
		stats.AverageAcceptedSize = acceptedSize / float64(stats.Accepted)
	}
	return stats, nil
}
