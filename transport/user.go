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

// CreateUser handler
// @Summary Create user
// @Description Create a new user with a caller-supplied id
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Create User Request"
// @Success 200 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /user/createuser [put]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Description Partially update a user; only supplied fields change
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.UpdateUserRequest true "Update User Request"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /user/updateuser [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Update(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUser handler
// @Summary Get user
// @Tags User
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /user/getuser/{user_id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	res, err := s.UserApp.Get(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Tags User
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /user/deleteuser/{user_id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	if err := s.UserApp.Delete(ctx, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"user_id": userID})
}
