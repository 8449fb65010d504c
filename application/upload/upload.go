package upload

import (
	"context"
	"io"

	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	"github.com/urbannest/furniture-store/thirdparty/cloudinary"
	"github.com/urbannest/furniture-store/utils/errors"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

type UploadApp interface {
	Upload(ctx context.Context, folder, filename string, size int64, file io.Reader) (*model.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type uploadAppImpl struct {
	config *config.Config
	images cloudinary.ImageService
}

func NewUploadApp(config *config.Config, images cloudinary.ImageService) UploadApp {
	return &uploadAppImpl{config: config, images: images}
}

// Upload forwards one file to the image service with the fixed
// transformation profile and returns the resulting URL and metadata.
func (s *uploadAppImpl) Upload(ctx context.Context, folder, filename string, size int64, file io.Reader) (*model.UploadResult, error) {
	if file == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if size > s.config.Order.MaxFileSizeBytes {
		return nil, errors.SetCustomError(constant.ErrFileTooLarge)
	}
	if folder == "" {
		folder = s.config.Cloudinary.DefaultFolder
	}

	result, err := s.images.Upload(ctx, folder, filename, file)
	if err != nil {
		logger.Error("[Upload] error images.Upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithDetail(constant.ErrUploadFailed, err.Error())
	}

	return result, nil
}

// Delete removes a stored image by its public identifier, symmetric to
// Upload.
func (s *uploadAppImpl) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.images.Destroy(ctx, publicID); err != nil {
		logger.Error("[Delete] error images.Destroy", zap.String("error", err.Error()))
		return errors.SetCustomErrorWithDetail(constant.ErrUploadFailed, err.Error())
	}

	return nil
}
