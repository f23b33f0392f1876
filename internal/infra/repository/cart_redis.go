package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/stylehub/barber-api/internal/domain/pos"
)

// cartTTL keeps abandoned register sessions from piling up.
const cartTTL = 12 * time.Hour

// CartRedisStore keeps one cart per register session as a JSON blob.
type CartRedisStore struct {
	rdb *redis.Client
}

func NewCartRedisStore(rdb *redis.Client) *CartRedisStore {
	return &CartRedisStore{rdb: rdb}
}

func cartKey(sessionID string) string {
	return "pos:cart:" + sessionID
}

func (s *CartRedisStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartRedisStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(sessionID), raw, cartTTL).Err()
}

func (s *CartRedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, cartKey(sessionID)).Err()
}

// Compile-time check
var _ domain.CartStore = (*CartRedisStore)(nil)
