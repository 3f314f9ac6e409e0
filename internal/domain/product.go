package domain

// Product mirrors the upstream catalog's product document. JSON tags follow
// the upstream wire format so responses can be proxied without translation.
type Product struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage"`
	Rating               float64    `json:"rating"`
	Stock                int        `json:"stock"`
	Tags                 []string   `json:"tags,omitempty"`
	Brand                string     `json:"brand,omitempty"`
	SKU                  string     `json:"sku,omitempty"`
	Weight               float64    `json:"weight,omitempty"`
	Dimensions           Dimensions `json:"dimensions,omitempty"`
	WarrantyInformation  string     `json:"warrantyInformation,omitempty"`
	ShippingInformation  string     `json:"shippingInformation,omitempty"`
	AvailabilityStatus   string     `json:"availabilityStatus,omitempty"`
	Reviews              []Review   `json:"reviews,omitempty"`
	ReturnPolicy         string     `json:"returnPolicy,omitempty"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity,omitempty"`
	Images               []string   `json:"images,omitempty"`
	Thumbnail            string     `json:"thumbnail,omitempty"`
}

// Dimensions holds the physical size of a product.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Review is a customer review attached to a product.
type Review struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

// ProductPage is a window into the catalog, in the upstream's envelope shape.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// Category describes a product category as reported by the catalog.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SortKey selects the product attribute used for ordering.
type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
	SortByStock  SortKey = "stock"
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductFilters describes how a product listing should be narrowed and ordered.
type ProductFilters struct {
	Search    string    `json:"search"`
	Category  string    `json:"category"`
	SortBy    SortKey   `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

// DefaultFilters returns the filter state used before the shopper touches anything.
func DefaultFilters() ProductFilters {
	return ProductFilters{
		Search:    "",
		Category:  "all",
		SortBy:    SortByTitle,
		SortOrder: SortAsc,
	}
}

// ValidSortKey reports whether s names a supported sort attribute.
func ValidSortKey(s string) bool {
	switch SortKey(s) {
	case SortByTitle, SortByPrice, SortByRating, SortByStock:
		return true
	}
	return false
}

// ValidSortOrder reports whether s names a supported sort direction.
func ValidSortOrder(s string) bool {
	return SortOrder(s) == SortAsc || SortOrder(s) == SortDesc
}
