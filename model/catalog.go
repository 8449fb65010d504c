package model

import "github.com/urbannest/furniture-store/constant"

// CatalogQuery is the filter/sort/pagination state for one catalog view.
// All fields have defaults applied by Normalize.
type CatalogQuery struct {
	Category    constant.CategoryID
	SearchQuery string
	PriceMin    float64
	PriceMax    float64
	InStockOnly bool
	SortBy      constant.SortOption
	Page        int
	PerPage     int
	ViewMode    constant.ViewMode
}

// DefaultCatalogQuery returns the untouched filter state.
func DefaultCatalogQuery() CatalogQuery {
	return CatalogQuery{
		Category: constant.CategoryAll,
		PriceMin: constant.DefaultPriceMin,
		PriceMax: constant.DefaultPriceMax,
		SortBy:   constant.SortDefault,
		Page:     1,
		PerPage:  constant.DefaultItemsPerPage,
		ViewMode: constant.ViewModePagination,
	}
}

// Normalize fills zero values with defaults and clamps the page to 1.
func (q *CatalogQuery) Normalize() {
	if q.Category == "" {
		q.Category = constant.CategoryAll
	}
	if q.SortBy == "" {
		q.SortBy = constant.SortDefault
	}
	if q.ViewMode == "" {
		q.ViewMode = constant.ViewModePagination
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = constant.DefaultItemsPerPage
	}
	if q.PriceMax == 0 {
		q.PriceMax = constant.DefaultPriceMax
	}
}

// CatalogPage is one rendered page of the catalog.
type CatalogPage struct {
	Items      []Product `json:"items"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	HasMore    bool      `json:"hasMore"`
}
