package model

// Payment is an append-only ledger entry. Order existence is not checked.
type Payment struct {
	OrderID string  `bson:"order_id" json:"order_id"`
	Amount  float64 `bson:"amount" json:"amount"`
	Status  string  `bson:"status" json:"status"`
}

type PaymentAddRequest struct {
	OrderID string  `json:"order_id" validate:"required"`
	Amount  float64 `json:"amount" validate:"gte=0"`
	Status  string  `json:"status" validate:"required,oneof=pending completed failed refunded"`
}

type PaymentAddResponse struct {
	PaymentID string   `json:"payment_id"`
	Payment   *Payment `json:"payment"`
}
