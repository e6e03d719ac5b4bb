package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

const cartKeyPrefix = "cart:"

// cartStore implements adapter.CartStore on Redis. Each session's cart is
// one JSON value with a sliding TTL, so abandoned carts expire on their own.
type cartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a new Redis-backed cart store.
func NewCartStore(client *redis.Client, ttl time.Duration) adapter.CartStore {
	return &cartStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID uuid.UUID) string {
	return cartKeyPrefix + sessionID.String()
}

// Get retrieves the cart for a session. A missing key reads back as an empty
// cart.
func (s *cartStore) Get(ctx context.Context, sessionID uuid.UUID) (*entity.Cart, error) {
	payload, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = make(map[string]*entity.CartLine)
	}
	return &cart, nil
}

// Save stores the cart for a session and refreshes its TTL.
func (s *cartStore) Save(ctx context.Context, sessionID uuid.UUID, cart *entity.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear removes the cart for a session.
func (s *cartStore) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
