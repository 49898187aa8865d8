package user

import (
	"context"
	"time"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	userrepo "github.com/hendrawans/marketplace/repository/user"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, req *model.UpdateUserRequest) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &userAppImpl{userRepo: userRepo}
}

func (s *userAppImpl) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Error("[Create] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Create] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user := &model.User{
		ID:         req.ID,
		Name:       req.Name,
		Password:   string(hashed),
		Email:      req.Email,
		Location:   req.Location,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		CreatedAt:  time.Now().UTC(),
		Phone:      req.Phone,
		ProfilePic: req.ProfilePic,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("[Create] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

// Update applies only the supplied fields and returns the updated document.
func (s *userAppImpl) Update(ctx context.Context, req *model.UpdateUserRequest) (*model.User, error) {
	if req.UserPatch.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrEmptyUpdate)
	}

	if req.UserPatch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.UserPatch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[Update] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		h := string(hashed)
		req.UserPatch.Password = &h
	}

	matched, err := s.userRepo.Update(ctx, req.ID, &req.UserPatch)
	if err != nil {
		logger.Error("[Update] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Error("[Update] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

func (s *userAppImpl) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *userAppImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
