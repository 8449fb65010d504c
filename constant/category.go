package constant

type CategoryID string

const (
	CategoryAll      CategoryID = "all"
	CategorySofas    CategoryID = "sofas"
	CategoryBeds     CategoryID = "beds"
	CategoryDining   CategoryID = "dining"
	CategoryOffice   CategoryID = "office"
	CategoryCabinets CategoryID = "cabinets"
	CategoryOutdoor  CategoryID = "outdoor"
	CategoryCustom   CategoryID = "custom"
)

var CategoryName = map[CategoryID]string{
	CategoryAll:      "All Products",
	CategorySofas:    "Sofas & Couches",
	CategoryBeds:     "Beds & Mattresses",
	CategoryDining:   "Dining Tables & Chairs",
	CategoryOffice:   "Office Furniture",
	CategoryCabinets: "Cabinets & Storage",
	CategoryOutdoor:  "Outdoor Furniture",
	CategoryCustom:   "Custom Orders",
}

// IsValidCategory reports whether id names a real product category.
// CategoryAll is a filter value, not a category a product can belong to.
func IsValidCategory(id CategoryID) bool {
	_, ok := CategoryName[id]
	return ok && id != CategoryAll
}
