package order

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	cartrepo "github.com/hendrawans/marketplace/repository/cart"
	orderrepo "github.com/hendrawans/marketplace/repository/order"
	productrepo "github.com/hendrawans/marketplace/repository/product"
	userrepo "github.com/hendrawans/marketplace/repository/user"
	"github.com/hendrawans/marketplace/thirdparty/rabbitmq"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	Confirm(ctx context.Context, req *model.OrderConfirmRequest) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}

type orderAppImpl struct {
	userRepo    userrepo.UserRepository
	productRepo productrepo.ProductRepository
	cartRepo    cartrepo.CartRepository
	orderRepo   orderrepo.OrderRepository
	publisher   *rabbitmq.Publisher
}

func NewOrderApp(userRepo userrepo.UserRepository, productRepo productrepo.ProductRepository, cartRepo cartrepo.CartRepository, orderRepo orderrepo.OrderRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

// Confirm converts a cart selection into a persisted order. The availability
// check runs before any mutation; a cascade step failing after the order was
// written leaves the order in place and is logged as an incomplete cascade.
func (s *orderAppImpl) Confirm(ctx context.Context, req *model.OrderConfirmRequest) (*model.Order, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Error("[Confirm] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	products, err := s.productRepo.GetAvailableByIDs(ctx, req.ProductIDs)
	if err != nil {
		logger.Error("[Confirm] err productRepo.GetAvailableByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(products) != len(req.ProductIDs) {
		return nil, errors.SetCustomError(constant.ErrProductsUnavailable)
	}

	var total float64
	for _, p := range products {
		total += p.Price
	}

	order := &model.Order{
		OrderID:     uuid.NewString(),
		UserID:      req.UserID,
		ProductIDs:  req.ProductIDs,
		TotalAmount: strconv.FormatFloat(total, 'f', -1, 64),
		Status:      constant.OrderStatusConfirmed,
		Location:    req.Location,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.Error("[Confirm] err orderRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// From here the order exists; a failure leaves product/cart state behind
	// the order and is logged distinctly from pre-commit validation.
	if err := s.productRepo.SetStatusByIDs(ctx, req.ProductIDs, constant.ProductStatusUnavailable); err != nil {
		logger.Error("[Confirm] order cascade incomplete: product statuses",
			zap.String("order_id", order.OrderID),
			zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cartRepo.MarkSold(ctx, req.UserID, req.ProductIDs); err != nil {
		logger.Error("[Confirm] order cascade incomplete: cart entries",
			zap.String("order_id", order.OrderID),
			zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.OrderConfirmedMessage{
			OrderID:     order.OrderID,
			UserID:      order.UserID,
			ProductIDs:  order.ProductIDs,
			TotalAmount: order.TotalAmount,
			Timestamp:   order.Timestamp,
		}
		if err := s.publisher.PublishOrderConfirmed(msg); err != nil {
			logger.Error("[Confirm] publish order confirmed", zap.String("error", err.Error()))
		}
	}

	return order, nil
}

// ListByUser returns the user's orders most-recent first. An empty list is
// reported as not found, which callers rely on.
func (s *orderAppImpl) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListByUser] err orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(orders) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return orders, nil
}
