package upload_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appupload "github.com/urbannest/furniture-store/application/upload"
	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/constant"
	cloudinarymocks "github.com/urbannest/furniture-store/mocks/thirdparty/cloudinary"
	"github.com/urbannest/furniture-store/model"
	cerr "github.com/urbannest/furniture-store/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Cloudinary: config.CloudinaryConfig{DefaultFolder: "furniture-products"},
		Order:      config.OrderConfig{MaxFileSizeBytes: 10 * 1024 * 1024},
	}
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestUploadApp_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success: explicit folder passed through", func(t *testing.T) {
		images := cloudinarymocks.NewImageService(t)
		images.On("Upload", mock.Anything, "lookbook", "sofa.jpg", mock.Anything).
			Return(&model.UploadResult{URL: "https://cdn/sofa.jpg", PublicID: "lookbook/sofa"}, nil).
			Once()

		app := appupload.NewUploadApp(testConfig(), images)

		got, err := app.Upload(ctx, "lookbook", "sofa.jpg", 1024, strings.NewReader("img"))
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if got.URL != "https://cdn/sofa.jpg" {
			t.Fatalf("url = %s", got.URL)
		}
	})

	t.Run("success: empty folder falls back to the default", func(t *testing.T) {
		images := cloudinarymocks.NewImageService(t)
		images.On("Upload", mock.Anything, "furniture-products", "sofa.jpg", mock.Anything).
			Return(&model.UploadResult{URL: "https://cdn/sofa.jpg"}, nil).
			Once()

		app := appupload.NewUploadApp(testConfig(), images)

		if _, err := app.Upload(ctx, "", "sofa.jpg", 1024, strings.NewReader("img")); err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
	})

	t.Run("error: nil file", func(t *testing.T) {
		app := appupload.NewUploadApp(testConfig(), cloudinarymocks.NewImageService(t))

		_, err := app.Upload(ctx, "", "sofa.jpg", 1024, nil)
		assertErrType(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: file over the size limit", func(t *testing.T) {
		app := appupload.NewUploadApp(testConfig(), cloudinarymocks.NewImageService(t))

		_, err := app.Upload(ctx, "", "sofa.jpg", 11*1024*1024, strings.NewReader("img"))
		assertErrType(t, err, constant.ErrFileTooLarge)
	})

	t.Run("error: image service failure surfaces its message", func(t *testing.T) {
		images := cloudinarymocks.NewImageService(t)
		images.On("Upload", mock.Anything, "furniture-products", "sofa.jpg", mock.Anything).
			Return(nil, errors.New("upload rejected: invalid signature")).
			Once()

		app := appupload.NewUploadApp(testConfig(), images)

		_, err := app.Upload(ctx, "", "sofa.jpg", 1024, strings.NewReader("img"))
		assertErrType(t, err, constant.ErrUploadFailed)
		if !strings.Contains(err.Error(), "invalid signature") {
			t.Fatalf("error = %q, want upstream message surfaced", err.Error())
		}
	})
}

func TestUploadApp_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		images := cloudinarymocks.NewImageService(t)
		images.On("Destroy", mock.Anything, "lookbook/sofa").Return(nil).Once()

		app := appupload.NewUploadApp(testConfig(), images)
		if err := app.Delete(ctx, "lookbook/sofa"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("error: empty public id", func(t *testing.T) {
		app := appupload.NewUploadApp(testConfig(), cloudinarymocks.NewImageService(t))
		assertErrType(t, app.Delete(ctx, ""), constant.ErrInvalidRequest)
	})

	t.Run("error: image service failure", func(t *testing.T) {
		images := cloudinarymocks.NewImageService(t)
		images.On("Destroy", mock.Anything, "lookbook/sofa").Return(errors.New("destroy returned status 401")).Once()

		app := appupload.NewUploadApp(testConfig(), images)
		assertErrType(t, app.Delete(ctx, "lookbook/sofa"), constant.ErrUploadFailed)
	})
}
