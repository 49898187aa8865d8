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

// AddCartItem handler
// @Summary Add a product to the cart
// @Description A second add for the same (user, product) pair is a conflict
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.CartAddRequest true "Cart Add Request"
// @Success 200 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /cart/add [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.Add(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Update a cart entry's status
// @Tags Cart
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param product_id path string true "Product ID"
// @Param request body model.CartUpdateRequest true "Cart Update Request"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /cart/update/{user_id}/{product_id} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	var req model.CartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.UpdateStatus(ctx, vars["user_id"], vars["product_id"], req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{
		"user_id":    vars["user_id"],
		"product_id": vars["product_id"],
		"status":     req.Status,
	})
}

// DeleteCartItem handler
// @Summary Remove a cart entry
// @Tags Cart
// @Produce json
// @Param user_id path string true "User ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /cart/delete/{user_id}/{product_id} [delete]
func (s *RestHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	if err := s.CartApp.Remove(ctx, vars["user_id"], vars["product_id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{
		"user_id":    vars["user_id"],
		"product_id": vars["product_id"],
	})
}

// GetCart handler
// @Summary List a user's cart
// @Description An empty cart is reported as not found
// @Tags Cart
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /cart/getcart/{user_id} [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	res, err := s.CartApp.List(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
