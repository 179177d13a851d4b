package interfaces

import (
	"context"
	"solar_quotes/internal/domain/entities"
)

// IQuoteSnapshotRepository persists the quote store as a single blob under a named key.
//
// Load returns a zero-value snapshot (and no error) when nothing was saved yet.

type IQuoteSnapshotRepository interface {
	Load(ctx context.Context, key string) (entities.QuoteSnapshot, error)
	Save(ctx context.Context, key string, snapshot entities.QuoteSnapshot) error
}
