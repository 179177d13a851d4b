package repository

import (
	"context"
	"encoding/json"
	"errors"

	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// QuoteSnapshotRedisRepository stores the quote store blob as a plain Redis
// string under the snapshot key. No expiry is set.

type QuoteSnapshotRedisRepository struct {
	rdb redis.Cmdable
}

var _ interfaces.IQuoteSnapshotRepository = (*QuoteSnapshotRedisRepository)(nil)

func NewQuoteSnapshotRedisRepository(rdb redis.Cmdable) *QuoteSnapshotRedisRepository {
	return &QuoteSnapshotRedisRepository{rdb: rdb}
}

func (r *QuoteSnapshotRedisRepository) Load(ctx context.Context, key string) (entities.QuoteSnapshot, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.QuoteSnapshot{}, nil
	}
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}

	var s entities.QuoteSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.QuoteSnapshot{}, err
	}
	return s, nil
}

func (r *QuoteSnapshotRedisRepository) Save(ctx context.Context, key string, snapshot entities.QuoteSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, payload, 0).Err()
}
