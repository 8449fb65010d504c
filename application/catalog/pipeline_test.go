package catalog_test

import (
	"reflect"
	"testing"

	appcatalog "github.com/urbannest/furniture-store/application/catalog"
	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Oslo Sofa", Description: "Three-seat fabric sofa", Price: 1299, Category: constant.CategorySofas, InStock: true, CreatedAt: 100, Rating: 4.8},
		{ID: "p2", Name: "Nordic Bed", Description: "Oak bed frame", Price: 899, Category: constant.CategoryBeds, InStock: true, CreatedAt: 200, Rating: 4.5},
		{ID: "p3", Name: "Studio Desk", Description: "Compact office desk", Price: 450, Category: constant.CategoryOffice, InStock: false, CreatedAt: 300, Rating: 4.2},
		{ID: "p4", Name: "Fjord Chair", Description: "Dining chair in walnut", Price: 220, Category: constant.CategoryDining, InStock: true, CreatedAt: 400, Rating: 4.8},
		{ID: "p5", Name: "Lounge Sofa", Description: "Leather two-seater", Price: 1850, Category: constant.CategorySofas, InStock: true, CreatedAt: 500, Rating: 3.9},
	}
}

func baseQuery() model.CatalogQuery {
	q := model.DefaultCatalogQuery()
	return q
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query func() model.CatalogQuery
		want  []string
	}{
		{
			name:  "default query keeps everything",
			query: baseQuery,
			want:  []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name: "category narrows to sofas",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.Category = constant.CategorySofas
				return q
			},
			want: []string{"p1", "p5"},
		},
		{
			name: "search matches name case-insensitively",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.SearchQuery = "SOFA"
				return q
			},
			want: []string{"p1", "p5"},
		},
		{
			name: "search matches description too",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.SearchQuery = "walnut"
				return q
			},
			want: []string{"p4"},
		},
		{
			name: "in stock only drops unavailable products",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.InStockOnly = true
				return q
			},
			want: []string{"p1", "p2", "p4", "p5"},
		},
		{
			name: "price filter is a no-op at the default bounds",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.PriceMin = constant.DefaultPriceMin
				q.PriceMax = constant.DefaultPriceMax
				return q
			},
			want: []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name: "narrowed price range is inclusive on both ends",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.PriceMin = 220
				q.PriceMax = 899
				return q
			},
			want: []string{"p2", "p3", "p4"},
		},
		{
			name: "all predicates combine as a conjunction",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.Category = constant.CategorySofas
				q.SearchQuery = "sofa"
				q.InStockOnly = true
				q.PriceMin = 1000
				q.PriceMax = 1500
				return q
			},
			want: []string{"p1"},
		},
		{
			name: "no match yields an empty list, not an error",
			query: func() model.CatalogQuery {
				q := baseQuery()
				q.SearchQuery = "hammock"
				return q
			},
			want: []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := appcatalog.Filter(fixtureProducts(), tt.query())
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Fatalf("Filter() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		by   constant.SortOption
		want []string
	}{
		{
			name: "default keeps collection order",
			by:   constant.SortDefault,
			want: []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name: "price ascending",
			by:   constant.SortPriceAsc,
			want: []string{"p4", "p3", "p2", "p1", "p5"},
		},
		{
			name: "price descending",
			by:   constant.SortPriceDesc,
			want: []string{"p5", "p1", "p2", "p3", "p4"},
		},
		{
			name: "newest first by created timestamp",
			by:   constant.SortNewest,
			want: []string{"p5", "p4", "p3", "p2", "p1"},
		},
		{
			name: "rating descending, ties keep collection order",
			by:   constant.SortRating,
			want: []string{"p1", "p4", "p2", "p3", "p5"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			input := fixtureProducts()
			got := appcatalog.Sort(input, tt.by)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Fatalf("Sort(%s) = %v, want %v", tt.by, ids(got), tt.want)
			}
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := fixtureProducts()
	_ = appcatalog.Sort(input, constant.SortPriceAsc)
	if !reflect.DeepEqual(ids(input), []string{"p1", "p2", "p3", "p4", "p5"}) {
		t.Fatalf("Sort mutated its input: %v", ids(input))
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    []string
	}{
		{
			name:    "first page",
			page:    1,
			perPage: 2,
			want:    []string{"p1", "p2"},
		},
		{
			name:    "middle page",
			page:    2,
			perPage: 2,
			want:    []string{"p3", "p4"},
		},
		{
			name:    "last partial page",
			page:    3,
			perPage: 2,
			want:    []string{"p5"},
		},
		{
			name:    "page past the end is empty",
			page:    4,
			perPage: 2,
			want:    []string{},
		},
		{
			name:    "page below one clamps to the first page",
			page:    0,
			perPage: 2,
			want:    []string{"p1", "p2"},
		},
		{
			name:    "non-positive perPage falls back to the default size",
			page:    1,
			perPage: 0,
			want:    []string{"p1", "p2", "p3", "p4", "p5"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := appcatalog.Paginate(fixtureProducts(), tt.page, tt.perPage)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Fatalf("Paginate(%d, %d) = %v, want %v", tt.page, tt.perPage, ids(got), tt.want)
			}
		})
	}
}

// Successive pages concatenate back into the full sorted list with no
// overlap and no gap.
func TestPaginateCoversListExactly(t *testing.T) {
	sorted := appcatalog.Sort(fixtureProducts(), constant.SortPriceAsc)

	var joined []string
	for page := 1; page <= 3; page++ {
		joined = append(joined, ids(appcatalog.Paginate(sorted, page, 2))...)
	}

	if !reflect.DeepEqual(joined, ids(sorted)) {
		t.Fatalf("concatenated pages = %v, want %v", joined, ids(sorted))
	}
}
