package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	orderrepo "github.com/urbannest/furniture-store/repository/order"
	"github.com/urbannest/furniture-store/thirdparty/cloudinary"
	"github.com/urbannest/furniture-store/thirdparty/rabbitmq"
	"github.com/urbannest/furniture-store/utils/errors"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	SubmitCustomOrder(ctx context.Context, req *model.CustomOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, limit int) (*model.OrderListResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderAppImpl struct {
	config    *config.Config
	orderRepo orderrepo.OrderRepository
	images    cloudinary.ImageService
	publisher *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, orderRepo orderrepo.OrderRepository, images cloudinary.ImageService, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{config: config, orderRepo: orderRepo, images: images, publisher: publisher}
}

// CreateOrder stores a new order record with server-stamped metadata.
func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if req.CustomerName == "" || req.Email == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	now := time.Now().UnixMilli()
	order := &model.Order{
		ID:           uuid.NewString(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Category:     req.Category,
		Description:  req.Description,
		Budget:       req.Budget,
		Dimensions:   req.Dimensions,
		Material:     req.Material,
		Color:        req.Color,
		Timeline:     req.Timeline,
		Images:       req.Images,
		Status:       constant.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		logger.Error("[CreateOrder] error orderRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.notifyOrderCreated(order)
	return order, nil
}

// SubmitCustomOrder runs the full intake flow: local validation, then
// every reference image uploaded concurrently, then the order record.
// Any upload failure aborts before the record is created; images already
// uploaded are left behind (the CDN owns their lifecycle).
func (s *orderAppImpl) SubmitCustomOrder(ctx context.Context, req *model.CustomOrderRequest) (*model.Order, error) {
	if err := s.validateCustomOrder(req); err != nil {
		return nil, err
	}

	refs, err := s.uploadImages(ctx, req.Files)
	if err != nil {
		return nil, err
	}

	return s.CreateOrder(ctx, &model.CreateOrderRequest{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Category:     req.Category,
		Description:  req.Description,
		Budget:       req.Budget,
		Dimensions:   req.Dimensions,
		Material:     req.Material,
		Color:        req.Color,
		Timeline:     req.Timeline,
		Images:       refs,
	})
}

func (s *orderAppImpl) validateCustomOrder(req *model.CustomOrderRequest) error {
	if req.CustomerName == "" || req.Email == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if len(req.Files) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if len(req.Files) > s.config.Order.MaxFiles {
		return errors.SetCustomError(constant.ErrTooManyFiles)
	}
	for _, f := range req.Files {
		if f.Size > s.config.Order.MaxFileSizeBytes {
			return errors.SetCustomError(constant.ErrFileTooLarge)
		}
	}
	return nil
}

// uploadImages dispatches all uploads concurrently and awaits them
// jointly. The first failure wins; partial uploads are not rolled back.
func (s *orderAppImpl) uploadImages(ctx context.Context, files []model.OrderFile) ([]model.OrderImageRef, error) {
	folder := s.config.Cloudinary.DefaultFolder
	refs := make([]model.OrderImageRef, len(files))
	uploadErrs := make([]error, len(files))

	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := s.images.Upload(ctx, folder, files[i].Filename, files[i].Reader)
			if err != nil {
				uploadErrs[i] = err
				return
			}
			refs[i] = model.OrderImageRef{URL: result.URL, PublicID: result.PublicID}
		}(i)
	}
	wg.Wait()

	for _, err := range uploadErrs {
		if err != nil {
			logger.Error("[uploadImages] error images.Upload", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorWithDetail(constant.ErrUploadFailed, err.Error())
		}
	}

	return refs, nil
}

// ListOrders returns orders newest-first, limited to the most recent N.
func (s *orderAppImpl) ListOrders(ctx context.Context, limit int) (*model.OrderListResponse, error) {
	if limit <= 0 {
		limit = s.config.Order.DefaultListLimit
	}

	orders, err := s.orderRepo.List(ctx, limit)
	if err != nil {
		logger.Error("[ListOrders] error orderRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderListResponse{Orders: orders}, nil
}

func (s *orderAppImpl) DeleteOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		logger.Error("[DeleteOrder] error orderRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

// notifyOrderCreated publishes the back-office event, fire-and-forget.
func (s *orderAppImpl) notifyOrderCreated(order *model.Order) {
	if s.publisher == nil {
		return
	}

	msg := rabbitmq.OrderCreatedMessage{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Category:     order.Category,
		CreatedAt:    time.UnixMilli(order.CreatedAt),
	}
	if err := s.publisher.PublishOrderCreated(msg); err != nil {
		logger.Error("[notifyOrderCreated] error publish order created", zap.String("error", err.Error()))
	}
}
