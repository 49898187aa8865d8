package cart

import (
	"context"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	cartrepo "github.com/hendrawans/marketplace/repository/cart"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	Add(ctx context.Context, req *model.CartAddRequest) (*model.CartEntry, error)
	UpdateStatus(ctx context.Context, userID, productID, status string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) (*model.CartListResponse, error)
}

type cartAppImpl struct {
	cartRepo cartrepo.CartRepository
}

func NewCartApp(cartRepo cartrepo.CartRepository) CartApp {
	return &cartAppImpl{cartRepo: cartRepo}
}

// Add inserts the (user, product) pair once; a second add for the same pair
// is a conflict. The insert is a single conditional write, so concurrent
// adds cannot both succeed.
func (s *cartAppImpl) Add(ctx context.Context, req *model.CartAddRequest) (*model.CartEntry, error) {
	entry := &model.CartEntry{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Status:    req.Status,
	}
	if entry.Status == "" {
		entry.Status = constant.CartStatusSelected
	}

	inserted, err := s.cartRepo.AddIfAbsent(ctx, entry)
	if err != nil {
		logger.Error("[Add] err cartRepo.AddIfAbsent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !inserted {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}
	return entry, nil
}

func (s *cartAppImpl) UpdateStatus(ctx context.Context, userID, productID, status string) error {
	matched, err := s.cartRepo.UpdateStatus(ctx, userID, productID, status)
	if err != nil {
		logger.Error("[UpdateStatus] err cartRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *cartAppImpl) Remove(ctx context.Context, userID, productID string) error {
	deleted, err := s.cartRepo.Delete(ctx, userID, productID)
	if err != nil {
		logger.Error("[Remove] err cartRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// List treats an empty cart as not found, which callers rely on.
func (s *cartAppImpl) List(ctx context.Context, userID string) (*model.CartListResponse, error) {
	entries, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[List] err cartRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(entries) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.CartListResponse{
		UserID:    userID,
		CartItems: entries,
	}, nil
}
