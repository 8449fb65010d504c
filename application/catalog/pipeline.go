package catalog

import (
	"sort"
	"strings"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
)

// Filter keeps the products satisfying every active predicate of the
// query at once. The input order is preserved.
func Filter(products []model.Product, q model.CatalogQuery) []model.Product {
	filtered := make([]model.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(q.SearchQuery))
	priceActive := q.PriceMin != constant.DefaultPriceMin || q.PriceMax != constant.DefaultPriceMax

	for _, p := range products {
		if q.Category != "" && q.Category != constant.CategoryAll && p.Category != q.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if q.InStockOnly && !p.InStock {
			continue
		}
		if priceActive && (p.Price < q.PriceMin || p.Price > q.PriceMax) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// matchesSearch does a case-insensitive substring match over name and
// description.
func matchesSearch(p model.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Description), query)
}

// Sort orders products by the selected option. The sort is stable: equal
// keys keep their original collection order. SortDefault returns the
// input untouched.
func Sort(products []model.Product, by constant.SortOption) []model.Product {
	if by == constant.SortDefault || by == "" {
		return products
	}

	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch by {
	case constant.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case constant.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case constant.SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	case constant.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}

// Paginate slices one page out of the list. Pages past the end yield an
// empty page, never an error.
func Paginate(products []model.Product, page, perPage int) []model.Product {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = constant.DefaultItemsPerPage
	}

	start := (page - 1) * perPage
	if start >= len(products) {
		return []model.Product{}
	}

	end := start + perPage
	if end > len(products) {
		end = len(products)
	}

	return products[start:end]
}
