package constant

// Mongo collection names.
const (
	CollectionUser     = "user"
	CollectionProducts = "products"
	CollectionCart     = "cart"
	CollectionOrders   = "orders"
	CollectionPayments = "payments"
	CollectionOTP      = "otp"
)

type contextKey string

// UserIDKey carries the session user id attached by the session middleware.
const UserIDKey contextKey = "user_id"
