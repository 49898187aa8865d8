package model

// CartEntry is the cart collection document, keyed by the
// (user_id, product_id) pair.
type CartEntry struct {
	UserID    string `bson:"user_id" json:"user_id"`
	ProductID string `bson:"product_id" json:"product_id"`
	Status    string `bson:"status" json:"status"`
}

type CartAddRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=selected unselected sold"`
}

type CartUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=selected unselected sold"`
}

type CartListResponse struct {
	UserID    string      `json:"user_id"`
	CartItems []CartEntry `json:"cart_items"`
}
