package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/urbannest/furniture-store/model"
)

// Orders live as JSON records under orders/<id>, with a createdAt-scored
// sorted set for the newest-first listing.
const (
	orderKeyPrefix = "orders/"
	orderIndexKey  = "orders"
)

type Redis struct {
	conn *redis.Client
}

type OrderRepository interface {
	Insert(ctx context.Context, o *model.Order) error
	List(ctx context.Context, limit int) ([]model.Order, error)
	Delete(ctx context.Context, id string) error
}

func NewOrderRepository(conn *redis.Client) OrderRepository {
	return &Redis{conn: conn}
}

func (r *Redis) Insert(ctx context.Context, o *model.Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return err
	}

	pipe := r.conn.TxPipeline()
	pipe.Set(ctx, orderKeyPrefix+o.ID, raw, 0)
	pipe.ZAdd(ctx, orderIndexKey, redis.Z{Score: float64(o.CreatedAt), Member: o.ID})
	_, err = pipe.Exec(ctx)
	return err
}

// List returns orders newest-first. A limit <= 0 returns everything.
func (r *Redis) List(ctx context.Context, limit int) ([]model.Order, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := r.conn.ZRevRange(ctx, orderIndexKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Order{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = orderKeyPrefix + id
	}

	raws, err := r.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(raws))
	for i, raw := range raws {
		s, ok := raw.(string)
		if !ok {
			// Record deleted between index read and fetch; skip it.
			continue
		}
		var o model.Order
		if err := json.Unmarshal([]byte(s), &o); err != nil {
			return nil, fmt.Errorf("decode order %s: %w", ids[i], err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	pipe := r.conn.TxPipeline()
	pipe.Del(ctx, orderKeyPrefix+id)
	pipe.ZRem(ctx, orderIndexKey, id)
	_, err := pipe.Exec(ctx)
	return err
}
