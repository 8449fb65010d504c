package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/urbannest/furniture-store/model"
)

const cartKeyPrefix = "carts/"

type Redis struct {
	conn *redis.Client
	ttl  time.Duration
}

// CartRepository persists per-session cart snapshots with a TTL so
// abandoned carts expire on their own.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, sessionID string, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

func NewCartRepository(conn *redis.Client, ttl time.Duration) CartRepository {
	return &Redis{conn: conn, ttl: ttl}
}

// Get returns (nil, nil) when the session has no stored cart.
func (r *Redis) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	raw, err := r.conn.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c model.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Redis) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.conn.Set(ctx, cartKeyPrefix+sessionID, raw, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	return r.conn.Del(ctx, cartKeyPrefix+sessionID).Err()
}
