package transport

import (
	"encoding/json"
	"net/http"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"github.com/hendrawans/marketplace/utils/errors"
	validatorx "github.com/hendrawans/marketplace/utils/validator"
)

// Login handler
// @Summary Login with email and password
// @Description On bad credentials the body carries success=false instead of an error status
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Router /auth/email/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Signup handler
// @Summary Check signup availability
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 200 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /auth/email/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.Signup(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"email": req.Email})
}

// SendOTP handler
// @Summary Send a signup verification code
// @Description Emails a 6-digit code valid for 10 minutes
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} transport.Response
// @Router /auth/email/signup/sendotp [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.SendOTP(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"email": req.Email})
}

// VerifyOTP handler
// @Summary Verify the signup code and create the account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /auth/email/verifyotp [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.VerifyOTP(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
