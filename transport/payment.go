package transport

import (
	"encoding/json"
	"net/http"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"github.com/hendrawans/marketplace/utils/errors"
	validatorx "github.com/hendrawans/marketplace/utils/validator"
)

// AddPayment handler
// @Summary Record a payment ledger entry
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body model.PaymentAddRequest true "Payment Add Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /payment/add [post]
func (s *RestHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PaymentAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PaymentApp.Add(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
