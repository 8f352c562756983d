package models

// Product statuses as used by the store API.
const (
	ProductStatusActive     = "ACTIVE"
	ProductStatusInactive   = "INACTIVE"
	ProductStatusOutOfStock = "OUT_OF_STOCK"
)

// Product is a catalog snapshot as returned by the store API. Cart logic
// relies only on ID, Price and Stock; everything else is display data.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Status       string  `json:"status,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// ProductRequest is the create/update payload for admin product management.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int64   `json:"categoryId"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// ProductQuery collects the listing filters the API accepts as query
// parameters. Zero values mean "not set" and are omitted from the request.
type ProductQuery struct {
	Page       int
	Size       int
	SortBy     string
	SortDir    string
	Keyword    string
	CategoryID int64
	MinPrice   float64
	MaxPrice   float64
}
