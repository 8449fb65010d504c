package transport

import (
	"encoding/json"
	"net/http"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	"github.com/urbannest/furniture-store/utils/errors"
	validatorx "github.com/urbannest/furniture-store/utils/validator"
)

// GetProducts handler
// @Summary Fetch products
// @Description Fetch all products, a category, or a single product by id (404 when absent)
// @Tags Products
// @Produce json
// @Param id query string false "Product id"
// @Param category query string false "Category id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /products [get]
func (s *RestHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if id := r.URL.Query().Get("id"); id != "" {
		res, err := s.ProductApp.GetProduct(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
		return
	}

	category := constant.CategoryID(r.URL.Query().Get("category"))
	res, err := s.ProductApp.ListProducts(ctx, category)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListFeaturedProducts handler
// @Summary Fetch featured products
// @Tags Products
// @Produce json
// @Success 200 {object} Response{data=[]model.Product}
// @Router /products/featured [get]
func (s *RestHandler) ListFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ProductApp.ListFeatured(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SaveProduct handler
// @Summary Create or update a product
// @Description A present id selects update; an absent one selects insert. Featured entries go to their own collection
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.SaveProductRequest true "Product Request"
// @Success 200 {object} Response{data=model.SaveProductResponse}
// @Failure 400 {object} Response
// @Security BearerAuth
// @Router /products [post]
func (s *RestHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.SaveProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
