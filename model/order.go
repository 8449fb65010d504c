package model

import (
	"io"

	"github.com/urbannest/furniture-store/constant"
)

// Order is the flat record stored under orders/<id>. Timestamps are unix
// milliseconds to keep the stored layout flat and sortable.
type Order struct {
	ID           string               `json:"id"`
	CustomerName string               `json:"customerName"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone,omitempty"`
	Category     constant.CategoryID  `json:"category,omitempty"`
	Description  string               `json:"description,omitempty"`
	Budget       string               `json:"budget,omitempty"`
	Dimensions   string               `json:"dimensions,omitempty"`
	Material     string               `json:"material,omitempty"`
	Color        string               `json:"color,omitempty"`
	Timeline     string               `json:"timeline,omitempty"`
	Images       []OrderImageRef      `json:"images,omitempty"`
	Status       constant.OrderStatus `json:"status"`
	CreatedAt    int64                `json:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt"`
}

// OrderImageRef points at a reference image hosted on the image CDN.
type OrderImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type CreateOrderRequest struct {
	CustomerName string               `json:"customerName" validate:"required"`
	Email        string               `json:"email" validate:"required,email"`
	Phone        string               `json:"phone,omitempty"`
	Category     constant.CategoryID  `json:"category,omitempty" validate:"omitempty,productcategory"`
	Description  string               `json:"description,omitempty"`
	Budget       string               `json:"budget,omitempty"`
	Dimensions   string               `json:"dimensions,omitempty"`
	Material     string               `json:"material,omitempty"`
	Color        string               `json:"color,omitempty"`
	Timeline     string               `json:"timeline,omitempty"`
	Images       []OrderImageRef      `json:"images,omitempty"`
	Status       constant.OrderStatus `json:"-"`
}

// CustomOrderRequest carries the custom-order intake form plus the raw
// reference images still to be uploaded.
type CustomOrderRequest struct {
	CustomerName string              `validate:"required"`
	Email        string              `validate:"required,email"`
	Phone        string              `validate:"required"`
	Category     constant.CategoryID `validate:"omitempty,productcategory"`
	Description  string              `validate:"required"`
	Budget       string
	Dimensions   string
	Material     string
	Color        string
	Timeline     string `validate:"required"`
	Files        []OrderFile
}

// OrderFile is one attached reference image from the intake form.
type OrderFile struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

type DeleteOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}
