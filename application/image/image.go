package image

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/hendrawans/marketplace/constant"
	imagerepo "github.com/hendrawans/marketplace/repository/image"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ImageApp interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
	Download(ctx context.Context, fileID string, w io.Writer) error
	Delete(ctx context.Context, fileID string) error
}

type imageAppImpl struct {
	imageRepo imagerepo.ImageRepository
}

func NewImageApp(imageRepo imagerepo.ImageRepository) ImageApp {
	return &imageAppImpl{imageRepo: imageRepo}
}

// Upload stores the file under a uuid-prefixed name and returns the blob id.
func (s *imageAppImpl) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}

	stored := fmt.Sprintf("%s_%s", uuid.NewString(), filename)
	id, err := s.imageRepo.Upload(ctx, stored, contentType, data)
	if err != nil {
		logger.Error("[Upload] err imageRepo.Upload", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *imageAppImpl) Download(ctx context.Context, fileID string, w io.Writer) error {
	if err := s.imageRepo.Download(ctx, fileID, w); err != nil {
		if err == imagerepo.ErrNotFound {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Download] err imageRepo.Download", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *imageAppImpl) Delete(ctx context.Context, fileID string) error {
	if err := s.imageRepo.Delete(ctx, fileID); err != nil {
		if err == imagerepo.ErrNotFound {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Delete] err imageRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
