package product

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/urbannest/furniture-store/model"
)

// Products live in the hierarchical store as two collections: a hash per
// collection, field = product id, value = the flat JSON record.
const (
	productsKey         = "products"
	featuredProductsKey = "featuredproducts"
)

type Redis struct {
	conn *redis.Client
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Set(ctx context.Context, p *model.Product) error
	SetFeatured(ctx context.Context, p *model.Product) error
}

func NewProductRepository(conn *redis.Client) ProductRepository {
	return &Redis{conn: conn}
}

func (r *Redis) List(ctx context.Context) ([]model.Product, error) {
	return r.listCollection(ctx, productsKey)
}

func (r *Redis) ListFeatured(ctx context.Context) ([]model.Product, error) {
	return r.listCollection(ctx, featuredProductsKey)
}

func (r *Redis) listCollection(ctx context.Context, key string) ([]model.Product, error) {
	records, err := r.conn.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	items := make([]model.Product, 0, len(records))
	for id, raw := range records {
		var p model.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", id, err)
		}
		p.ID = id
		items = append(items, p)
	}

	// Hash iteration order is undefined; fix the collection order so the
	// catalog pipeline stays stable across calls.
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})

	return items, nil
}

// GetByID returns (nil, nil) when the product does not exist.
func (r *Redis) GetByID(ctx context.Context, id string) (*model.Product, error) {
	raw, err := r.conn.HGet(ctx, productsKey, id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p model.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

func (r *Redis) Set(ctx context.Context, p *model.Product) error {
	return r.setCollection(ctx, productsKey, p)
}

func (r *Redis) SetFeatured(ctx context.Context, p *model.Product) error {
	return r.setCollection(ctx, featuredProductsKey, p)
}

func (r *Redis) setCollection(ctx context.Context, key string, p *model.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.conn.HSet(ctx, key, p.ID, raw).Err()
}

const keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewProductKey generates a collection key of the form
// <unix-millis>_<9 random base36 chars>.
func NewProductKey() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = keyAlphabet[rand.Intn(len(keyAlphabet))]
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), suffix)
}
