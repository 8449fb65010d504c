package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	"github.com/urbannest/furniture-store/utils/errors"
	validatorx "github.com/urbannest/furniture-store/utils/validator"
)

// multipartMemoryLimit caps the in-memory portion of intake form parsing;
// larger files spill to temp storage.
const multipartMemoryLimit = 32 << 20

// ListOrders handler
// @Summary List orders newest-first
// @Tags Orders
// @Produce json
// @Param limit query int false "Most recent N"
// @Success 200 {object} Response{data=model.OrderListResponse}
// @Failure 400 {object} Response
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		limit = n
	}

	res, err := s.OrderApp.ListOrders(ctx, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateOrder handler
// @Summary Create an order record
// @Description Requires customerName and email; the server stamps id, timestamps and pending status
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Order Request"
// @Success 200 {object} Response{data=model.Order}
// @Failure 400 {object} Response
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitCustomOrder handler
// @Summary Submit the custom-order intake form
// @Description Multipart form with customer fields and 1-5 reference images, each at most 10MB
// @Tags Orders
// @Accept mpfd
// @Produce json
// @Success 200 {object} Response{data=model.Order}
// @Failure 400 {object} Response
// @Router /orders/custom [post]
func (s *RestHandler) SubmitCustomOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := &model.CustomOrderRequest{
		CustomerName: r.FormValue("name"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		Category:     constant.CategoryID(r.FormValue("category")),
		Description:  r.FormValue("description"),
		Budget:       r.FormValue("budget"),
		Dimensions:   r.FormValue("dimensions"),
		Material:     r.FormValue("material"),
		Color:        r.FormValue("color"),
		Timeline:     r.FormValue("timeline"),
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	headers := r.MultipartForm.File["images"]
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		defer f.Close()
		req.Files = append(req.Files, model.OrderFile{
			Filename: fh.Filename,
			Size:     fh.Size,
			Reader:   f,
		})
	}

	res, err := s.OrderApp.SubmitCustomOrder(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteOrder handler
// @Summary Delete an order by identifier
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.DeleteOrderRequest true "Delete Request"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Security BearerAuth
// @Router /orders [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.DeleteOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.DeleteOrder(ctx, req.OrderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"deleted": true})
}
