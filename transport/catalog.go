package transport

import (
	"net/http"
	"strconv"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	utilsContext "github.com/urbannest/furniture-store/utils/context"
	"github.com/urbannest/furniture-store/utils/errors"
)

// BrowseCatalog handler
// @Summary Browse the product catalog
// @Description Filter, sort and paginate the catalog
// @Tags Catalog
// @Produce json
// @Param category query string false "Category id or all"
// @Param q query string false "Search query"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param inStock query bool false "In-stock only"
// @Param sort query string false "default, price-asc, price-desc, newest, rating"
// @Param page query int false "Page, starting at 1"
// @Param perPage query int false "Items per page"
// @Param view query string false "pagination or infinite"
// @Success 200 {object} Response{data=model.CatalogPage}
// @Failure 400 {object} Response
// @Router /catalog [get]
func (s *RestHandler) BrowseCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := parseCatalogQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sessionID, _ := utilsContext.GetSessionID(ctx)

	res, err := s.CatalogApp.Browse(ctx, sessionID, query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func parseCatalogQuery(r *http.Request) (model.CatalogQuery, error) {
	q := model.DefaultCatalogQuery()
	params := r.URL.Query()

	if v := params.Get("category"); v != "" {
		q.Category = constant.CategoryID(v)
	}
	q.SearchQuery = params.Get("q")

	if v := params.Get("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		q.PriceMin = f
	}
	if v := params.Get("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		q.PriceMax = f
	}
	if v := params.Get("inStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		q.InStockOnly = b
	}
	if v := params.Get("sort"); v != "" {
		q.SortBy = constant.SortOption(v)
	}
	if v := params.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		q.Page = n
	}
	if v := params.Get("perPage"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		q.PerPage = n
	}
	if v := params.Get("view"); v != "" {
		q.ViewMode = constant.ViewMode(v)
	}

	return q, nil
}
