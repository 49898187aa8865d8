package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"github.com/hendrawans/marketplace/utils/errors"
	validatorx "github.com/hendrawans/marketplace/utils/validator"
)

// ConfirmOrder handler
// @Summary Confirm an order for a set of products
// @Description Fails without side effects when any product is unavailable
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.OrderConfirmRequest true "Order Confirm Request"
// @Success 200 {object} model.OrderConfirmResponse
// @Failure 422 {object} transport.Response
// @Router /orders/confirm [post]
func (s *RestHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	order, err := s.OrderApp.Confirm(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderConfirmResponse{
		Success: true,
		Order:   order,
	})
}

// GetUserOrders handler
// @Summary List a user's orders, most recent first
// @Description An empty order history is reported as not found
// @Tags Order
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.OrderListResponse
// @Failure 404 {object} transport.Response
// @Router /orders/user/{user_id} [get]
func (s *RestHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	orders, err := s.OrderApp.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderListResponse{
		Success: true,
		Count:   len(orders),
		Orders:  orders,
	})
}
