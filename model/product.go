package model

import "time"

// Product is the products collection document.
type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	SellerID    string    `bson:"seller_id" json:"seller_id"`
	Category    string    `bson:"category" json:"category"`
	Price       float64   `bson:"price" json:"price"`
	Status      string    `bson:"status" json:"status"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	Images      []string  `bson:"images" json:"images"`
}

// ProductPatch holds the optional fields of a partial product update.
type ProductPatch struct {
	Name        *string    `json:"name,omitempty"`
	SellerID    *string    `json:"seller_id,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Description *string    `json:"description,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Images      *[]string  `json:"images,omitempty"`
}

func (p *ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.SellerID == nil && p.Category == nil &&
		p.Price == nil && p.Status == nil && p.Description == nil &&
		p.UpdatedAt == nil && p.Images == nil
}

// ProductQuery is the filter the browse engine runs against the catalog.
// Name matches as a case-insensitive substring; Category "all" means no
// category restriction.
type ProductQuery struct {
	Status   string
	Name     string
	Category string
	MinPrice float64
	MaxPrice float64
}

type CreateProductRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	SellerID    string   `json:"seller_id" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Status      string   `json:"status" validate:"required,oneof=available unavailable"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}
