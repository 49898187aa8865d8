package constant

// Product availability, mutated by order confirmation.
const (
	ProductStatusAvailable   = "available"
	ProductStatusUnavailable = "unavailable"
)

// Cart entry status.
const (
	CartStatusSelected   = "selected"
	CartStatusUnselected = "unselected"
	CartStatusSold       = "sold"
)

// An order is written as confirmed and never transitions afterwards.
const OrderStatusConfirmed = "confirmed"

// Payment ledger statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)
