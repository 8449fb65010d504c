package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	cartRepo "github.com/urbannest/furniture-store/repository/cart"
	productRepo "github.com/urbannest/furniture-store/repository/product"
	"github.com/urbannest/furniture-store/utils/errors"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

// DefaultStockCap limits a line's quantity when the product does not
// declare a stock count.
const DefaultStockCap = 10

type CartApp interface {
	GetCart(ctx context.Context, sessionID string) (*model.CartSnapshot, error)
	AddItem(ctx context.Context, sessionID string, req *model.AddCartItemRequest) (*model.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *model.UpdateCartItemRequest) (*model.CartSnapshot, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*model.CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) (*model.CartSnapshot, error)
	Open(ctx context.Context, sessionID string) (*model.CartSnapshot, error)
	Close(ctx context.Context, sessionID string) (*model.CartSnapshot, error)
}

type cartAppImpl struct {
	productRepo productRepo.ProductRepository
	cartRepo    cartRepo.CartRepository

	mu    sync.Mutex
	carts map[string]*model.Cart
}

func NewCartApp(productRepo productRepo.ProductRepository, cartRepo cartRepo.CartRepository) CartApp {
	return &cartAppImpl{
		productRepo: productRepo,
		cartRepo:    cartRepo,
		carts:       make(map[string]*model.Cart),
	}
}

func (s *cartAppImpl) GetCart(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.loadCart(ctx, sessionID)
	return snapshot(cart, ""), nil
}

// AddItem inserts or accumulates a line. Out-of-stock products are
// rejected without touching the cart. Accumulation past the product's
// stock cap clamps at the cap and warns instead of failing. A successful
// add opens the cart panel.
func (s *cartAppImpl) AddItem(ctx context.Context, sessionID string, req *model.AddCartItemRequest) (*model.CartSnapshot, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[AddItem] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !product.InStock {
		return nil, errors.SetCustomError(constant.ErrOutOfStock)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.loadCart(ctx, sessionID)
	warning := ""

	if idx := cart.Find(product.ID); idx >= 0 {
		cap := product.StockCount
		if cap <= 0 {
			cap = DefaultStockCap
		}
		newQuantity := cart.Items[idx].Quantity + quantity
		if newQuantity > cap {
			newQuantity = cap
			warning = fmt.Sprintf("Only %d items available in stock", cap)
		}
		cart.Items[idx].Quantity = newQuantity
	} else {
		cart.Items = append(cart.Items, model.CartItem{Product: *product, Quantity: quantity})
	}

	cart.IsOpen = true
	s.persist(ctx, sessionID, cart)
	return snapshot(cart, warning), nil
}

// UpdateQuantity sets a line's quantity exactly; anything below 1 removes
// the line.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID string, req *model.UpdateCartItemRequest) (*model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.loadCart(ctx, sessionID)

	if req.Quantity < 1 {
		s.removeLine(cart, req.ProductID)
	} else if idx := cart.Find(req.ProductID); idx >= 0 {
		cart.Items[idx].Quantity = req.Quantity
	}

	s.persist(ctx, sessionID, cart)
	return snapshot(cart, ""), nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, sessionID, productID string) (*model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.loadCart(ctx, sessionID)
	s.removeLine(cart, productID)

	s.persist(ctx, sessionID, cart)
	return snapshot(cart, ""), nil
}

func (s *cartAppImpl) Clear(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.loadCart(ctx, sessionID)
	cart.Items = []model.CartItem{}

	s.persist(ctx, sessionID, cart)
	return snapshot(cart, ""), nil
}

func (s *cartAppImpl) Open(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	return s.setOpen(ctx, sessionID, true)
}

func (s *cartAppImpl) Close(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	return s.setOpen(ctx, sessionID, false)
}

func (s *cartAppImpl) setOpen(ctx context.Context, sessionID string, open bool) (*model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.loadCart(ctx, sessionID)
	cart.IsOpen = open

	s.persist(ctx, sessionID, cart)
	return snapshot(cart, ""), nil
}

// loadCart returns the session's working cart, falling back to the stored
// snapshot and finally to a fresh cart. Caller must hold s.mu.
func (s *cartAppImpl) loadCart(ctx context.Context, sessionID string) *model.Cart {
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}

	if s.cartRepo != nil {
		stored, err := s.cartRepo.Get(ctx, sessionID)
		if err != nil {
			logger.Warn("[loadCart] error cartRepo.Get", zap.String("error", err.Error()))
		} else if stored != nil {
			s.carts[sessionID] = stored
			return stored
		}
	}

	cart := &model.Cart{Items: []model.CartItem{}}
	s.carts[sessionID] = cart
	return cart
}

// persist snapshots the cart to the store, best-effort. The in-memory
// copy stays authoritative when the store is unreachable.
func (s *cartAppImpl) persist(ctx context.Context, sessionID string, cart *model.Cart) {
	if s.cartRepo == nil {
		return
	}
	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		logger.Warn("[persist] error cartRepo.Save", zap.String("error", err.Error()))
	}
}

func (s *cartAppImpl) removeLine(cart *model.Cart, productID string) {
	if idx := cart.Find(productID); idx >= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}
}

func snapshot(cart *model.Cart, warning string) *model.CartSnapshot {
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return &model.CartSnapshot{
		Items:     items,
		IsOpen:    cart.IsOpen,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
		Warning:   warning,
	}
}
