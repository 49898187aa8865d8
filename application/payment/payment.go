package payment

import (
	"context"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	paymentrepo "github.com/hendrawans/marketplace/repository/payment"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

type PaymentApp interface {
	Add(ctx context.Context, req *model.PaymentAddRequest) (*model.PaymentAddResponse, error)
}

type paymentAppImpl struct {
	paymentRepo paymentrepo.PaymentRepository
}

func NewPaymentApp(paymentRepo paymentrepo.PaymentRepository) PaymentApp {
	return &paymentAppImpl{paymentRepo: paymentRepo}
}

// Add appends a ledger entry. The referenced order is not checked; the
// ledger is passive.
func (s *paymentAppImpl) Add(ctx context.Context, req *model.PaymentAddRequest) (*model.PaymentAddResponse, error) {
	payment := &model.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Status:  req.Status,
	}

	id, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		logger.Error("[Add] err paymentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PaymentAddResponse{
		PaymentID: id,
		Payment:   payment,
	}, nil
}
