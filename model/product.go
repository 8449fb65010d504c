package model

import "github.com/urbannest/furniture-store/constant"

// Product is the flat record stored under products/<id> (or
// featuredproducts/<id> for promotional placements).
type Product struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	Price          float64             `json:"price"`
	OriginalPrice  float64             `json:"originalPrice,omitempty"`
	Category       constant.CategoryID `json:"category"`
	Image          string              `json:"image,omitempty"`
	Images         []string            `json:"images,omitempty"`
	InStock        bool                `json:"inStock"`
	StockCount     int                 `json:"stockCount,omitempty"`
	IsNew          bool                `json:"isNew,omitempty"`
	Rating         float64             `json:"rating,omitempty"`
	ReviewCount    int                 `json:"reviewCount,omitempty"`
	Specifications *Specifications     `json:"specifications,omitempty"`
	CreatedAt      int64               `json:"createdAt,omitempty"`
	UpdatedAt      int64               `json:"updatedAt,omitempty"`
}

type Specifications struct {
	Dimensions string `json:"dimensions,omitempty"`
	Material   string `json:"material,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Assembly   string `json:"assembly,omitempty"`
	Warranty   string `json:"warranty,omitempty"`
}

type SaveProductRequest struct {
	ID                string              `json:"id,omitempty"`
	Name              string              `json:"name" validate:"required"`
	Description       string              `json:"description,omitempty"`
	Price             float64             `json:"price" validate:"required,gt=0"`
	OriginalPrice     float64             `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Category          constant.CategoryID `json:"category" validate:"required,productcategory"`
	Image             string              `json:"image,omitempty"`
	Images            []string            `json:"images,omitempty"`
	InStock           bool                `json:"inStock"`
	StockCount        int                 `json:"stockCount,omitempty" validate:"omitempty,gte=0"`
	IsNew             bool                `json:"isNew,omitempty"`
	Rating            float64             `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewCount       int                 `json:"reviewCount,omitempty" validate:"omitempty,gte=0"`
	Specifications    *Specifications     `json:"specifications,omitempty"`
	IsFeaturedProduct bool                `json:"isFeaturedProduct,omitempty"`
}

type SaveProductResponse struct {
	ID      string   `json:"id"`
	Product *Product `json:"product"`
}
