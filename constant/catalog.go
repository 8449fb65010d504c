package constant

type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
	SortRating    SortOption = "rating"
)

type ViewMode string

const (
	ViewModePagination ViewMode = "pagination"
	ViewModeInfinite   ViewMode = "infinite"
)

// Untouched filter defaults. The price filter is a no-op while the
// range still equals [DefaultPriceMin, DefaultPriceMax].
const (
	DefaultPriceMin     = 0
	DefaultPriceMax     = 10000
	DefaultItemsPerPage = 12
)

func IsValidSortOption(s SortOption) bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return true
	}
	return false
}
