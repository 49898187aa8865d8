package model

import "time"

// Order is the orders collection document. TotalAmount is stored as text,
// preserving the persisted document layout.
type Order struct {
	OrderID     string    `bson:"order_id" json:"order_id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ProductIDs  []string  `bson:"product_ids" json:"product_ids"`
	TotalAmount string    `bson:"total_amount" json:"total_amount"`
	Status      string    `bson:"status" json:"status"`
	Location    string    `bson:"location" json:"location"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

type OrderConfirmRequest struct {
	UserID     string   `json:"user_id" validate:"required"`
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,required"`
	Location   string   `json:"location" validate:"required"`
}

type OrderConfirmResponse struct {
	Success bool   `json:"success"`
	Order   *Order `json:"order"`
}

type OrderListResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Orders  []Order `json:"orders"`
}
