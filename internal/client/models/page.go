package models

// Page mirrors the API's Spring-style pagination envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// PageQuery is the common page/size/sort/keyword parameter set for listing
// endpoints. Zero values are omitted from the request.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
	Keyword string
}
