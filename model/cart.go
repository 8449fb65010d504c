package model

// CartItem is one line item: a product and its requested quantity.
// The cart holds at most one line per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the session-scoped cart state. IsOpen tracks the cart panel
// visibility: adding an item opens it, closing is explicit.
type Cart struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

// ItemCount is the sum of all line quantities, recomputed on every call.
func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}

// Subtotal is the sum of price x quantity over all lines, recomputed on
// every call.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// Find returns the index of the line holding productID, or -1.
func (c *Cart) Find(productID string) int {
	for i, it := range c.Items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// CartSnapshot is the derived view returned to clients after every
// mutation; totals are always freshly computed.
type CartSnapshot struct {
	Items     []CartItem `json:"items"`
	IsOpen    bool       `json:"isOpen"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
	Warning   string     `json:"warning,omitempty"`
}
