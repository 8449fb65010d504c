package product

import (
	"context"
	"time"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	productRepo "github.com/urbannest/furniture-store/repository/product"
	"github.com/urbannest/furniture-store/utils/errors"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, category constant.CategoryID) ([]model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	SaveProduct(ctx context.Context, req *model.SaveProductRequest) (*model.SaveProductResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

// ListProducts returns the catalog, optionally narrowed to one category.
func (s *productAppImpl) ListProducts(ctx context.Context, category constant.CategoryID) ([]model.Product, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if category == "" || category == constant.CategoryAll {
		return items, nil
	}

	filtered := make([]model.Product, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *productAppImpl) ListFeatured(ctx context.Context) ([]model.Product, error) {
	items, err := s.productRepo.ListFeatured(ctx)
	if err != nil {
		logger.Error("[ListFeatured] error productRepo.ListFeatured", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// GetProduct returns the product or ErrNotFound, which the transport
// maps to 404 so clients can render a distinct not-found state.
func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

// SaveProduct creates or updates a record: a present id selects update,
// an absent one selects insert. Featured entries go to their own
// collection.
func (s *productAppImpl) SaveProduct(ctx context.Context, req *model.SaveProductRequest) (*model.SaveProductResponse, error) {
	if req.Name == "" || req.Price <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	now := time.Now().UnixMilli()

	if req.ID != "" {
		existing, err := s.productRepo.GetByID(ctx, req.ID)
		if err != nil {
			logger.Error("[SaveProduct] error productRepo.GetByID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}

		updated := buildProduct(req)
		updated.ID = req.ID
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = now

		if err := s.productRepo.Set(ctx, updated); err != nil {
			logger.Error("[SaveProduct] error productRepo.Set", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return &model.SaveProductResponse{ID: updated.ID, Product: updated}, nil
	}

	created := buildProduct(req)
	created.ID = productRepo.NewProductKey()
	created.CreatedAt = now
	created.UpdatedAt = now

	var err error
	if req.IsFeaturedProduct {
		err = s.productRepo.SetFeatured(ctx, created)
	} else {
		err = s.productRepo.Set(ctx, created)
	}
	if err != nil {
		logger.Error("[SaveProduct] error storing product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SaveProductResponse{ID: created.ID, Product: created}, nil
}

func buildProduct(req *model.SaveProductRequest) *model.Product {
	return &model.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Category:       req.Category,
		Image:          req.Image,
		Images:         req.Images,
		InStock:        req.InStock,
		StockCount:     req.StockCount,
		IsNew:          req.IsNew,
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
		Specifications: req.Specifications,
	}
}
