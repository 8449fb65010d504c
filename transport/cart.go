package transport

import (
	"encoding/json"
	"net/http"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	utilsContext "github.com/urbannest/furniture-store/utils/context"
	"github.com/urbannest/furniture-store/utils/errors"
	validatorx "github.com/urbannest/furniture-store/utils/validator"
)

// GetCart handler
// @Summary Get the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	res, err := s.CartApp.GetCart(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add a product to the cart
// @Description Rejects out-of-stock products; clamps at the stock cap with a warning
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Add Request"
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Failure 400 {object} Response
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.AddItem(ctx, sessionID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Set a line item's quantity
// @Description A quantity below 1 removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.UpdateCartItemRequest true "Update Request"
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Failure 400 {object} Response
// @Router /cart/items [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateQuantity(ctx, sessionID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove a line item
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.RemoveCartItemRequest true "Remove Request"
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Failure 400 {object} Response
// @Router /cart/items [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	var req model.RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.RemoveItem(ctx, sessionID, req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	res, err := s.CartApp.Clear(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// OpenCart handler
// @Summary Open the cart panel
// @Tags Cart
// @Produce json
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Router /cart/open [post]
func (s *RestHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	res, err := s.CartApp.Open(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CloseCart handler
// @Summary Close the cart panel
// @Tags Cart
// @Produce json
// @Success 200 {object} Response{data=model.CartSnapshot}
// @Router /cart/close [post]
func (s *RestHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	res, err := s.CartApp.Close(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
