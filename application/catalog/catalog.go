package catalog

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	productRepo "github.com/urbannest/furniture-store/repository/product"
	"github.com/urbannest/furniture-store/utils/errors"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	Browse(ctx context.Context, sessionID string, q model.CatalogQuery) (*model.CatalogPage, error)
}

type catalogAppImpl struct {
	config      *config.Config
	productRepo productRepo.ProductRepository
	feeds       *feedStore

	cacheMu   sync.RWMutex
	cached    []model.Product
	fetchedAt time.Time
}

func NewCatalogApp(config *config.Config, productRepo productRepo.ProductRepository) CatalogApp {
	return &catalogAppImpl{
		config:      config,
		productRepo: productRepo,
		feeds:       newFeedStore(),
	}
}

// Browse runs the filter/sort/paginate pipeline over the full catalog and
// returns the exact page to render. An empty result is a valid page.
func (s *catalogAppImpl) Browse(ctx context.Context, sessionID string, q model.CatalogQuery) (*model.CatalogPage, error) {
	q.Normalize()

	if q.PriceMin > q.PriceMax || q.PriceMin < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if !constant.IsValidSortOption(q.SortBy) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	products, err := s.catalogProducts(ctx)
	if err != nil {
		logger.Error("[Browse] error loading catalog", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	filtered := Filter(products, q)
	sorted := Sort(filtered, q.SortBy)

	totalItems := len(sorted)
	totalPages := int(math.Ceil(float64(totalItems) / float64(q.PerPage)))
	pageItems := Paginate(sorted, q.Page, q.PerPage)

	items := pageItems
	if q.ViewMode == constant.ViewModeInfinite {
		items = s.feeds.Accumulate(sessionID, querySignature(q), q.Page, pageItems)
	}

	return &model.CatalogPage{
		Items:      items,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       q.Page,
		PerPage:    q.PerPage,
		HasMore:    q.Page < totalPages,
	}, nil
}

// catalogProducts serves the product list from an in-process cache,
// refreshed from the store when the TTL lapses.
func (s *catalogAppImpl) catalogProducts(ctx context.Context) ([]model.Product, error) {
	ttl := s.config.Catalog.CacheTTL

	s.cacheMu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < ttl {
		items := s.cached
		s.cacheMu.RUnlock()
		return items, nil
	}
	s.cacheMu.RUnlock()

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < ttl {
		return s.cached, nil
	}

	items, err := s.productRepo.List(ctx)
	if err != nil {
		// Serve the stale copy rather than failing the page when the
		// store is unreachable and we still hold one.
		if s.cached != nil {
			return s.cached, nil
		}
		return nil, err
	}

	s.cached = items
	s.fetchedAt = time.Now()
	return items, nil
}
