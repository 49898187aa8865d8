package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrConflict
	ErrEmptyUpdate
	ErrInvalidPassword
	ErrProductsUnavailable
	ErrOTPExpired
	ErrOTPMismatch
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrForbidden:           "unauthorized access",
	ErrConflict:            "data already exists",
	ErrEmptyUpdate:         "no fields provided for update",
	ErrInvalidPassword:     "password invalid",
	ErrProductsUnavailable: "some products are not available",
	ErrOTPExpired:          "otp expired",
	ErrOTPMismatch:         "otp does not match",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrConflict:            http.StatusConflict,
	ErrEmptyUpdate:         http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrProductsUnavailable: http.StatusUnprocessableEntity,
	ErrOTPExpired:          http.StatusBadRequest,
	ErrOTPMismatch:         http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrForbidden:           "0005",
	ErrConflict:            "0006",
	ErrEmptyUpdate:         "0007",
	ErrInvalidPassword:     "0008",
	ErrProductsUnavailable: "0009",
	ErrOTPExpired:          "0010",
	ErrOTPMismatch:         "0011",
}
