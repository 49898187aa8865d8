package product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	productrepo "github.com/hendrawans/marketplace/repository/product"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, patch *model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Create] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	now := time.Now().UTC()
	images := req.Images
	if images == nil {
		images = []string{}
	}
	product := &model.Product{
		ID:          id,
		Name:        req.Name,
		SellerID:    req.SellerID,
		Category:    req.Category,
		Price:       req.Price,
		Status:      req.Status,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Images:      images,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("[Create] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}

// Update applies only the supplied fields, stamps updated_at, and returns
// the updated document.
func (s *productAppImpl) Update(ctx context.Context, id string, patch *model.ProductPatch) (*model.Product, error) {
	if patch.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrEmptyUpdate)
	}

	now := time.Now().UTC()
	patch.UpdatedAt = &now

	matched, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		logger.Error("[Update] err productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	updated, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Update] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

func (s *productAppImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *productAppImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

func (s *productAppImpl) ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error) {
	products, err := s.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("[ListBySeller] err productRepo.ListBySeller", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}
