package model

// BrowseRequest carries the browse query parameters after defaulting.
type BrowseRequest struct {
	UserID   string
	Name     string
	Category string
	Limit    int
	SortBy   string
	MinPrice float64
	MaxPrice float64
}

// AnnotatedProduct is a catalog product annotated with its seller's distance
// from the requesting user, in kilometers rounded to two decimals.
type AnnotatedProduct struct {
	Product
	DistanceKM float64 `json:"distance_km"`
}

type BrowseResponse struct {
	Success  bool               `json:"success"`
	Count    int                `json:"count"`
	Products []AnnotatedProduct `json:"products"`
}
