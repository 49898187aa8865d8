package transport

import (
	"encoding/json"
	"net/http"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/utils/errors"
)

// Response is the standard envelope. A few legacy-shaped endpoints (browse,
// order listing, login) write their own payloads via writeJSON instead.
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{
		Success: true,
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if ce, ok := err.(errors.CustomError); ok {
		w.WriteHeader(ce.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(Response{
			Success: false,
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(Response{
		Success: false,
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
