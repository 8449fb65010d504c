package order_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	apporder "github.com/urbannest/furniture-store/application/order"
	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/constant"
	ordermocks "github.com/urbannest/furniture-store/mocks/repository/order"
	cloudinarymocks "github.com/urbannest/furniture-store/mocks/thirdparty/cloudinary"
	"github.com/urbannest/furniture-store/model"
	cerr "github.com/urbannest/furniture-store/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Cloudinary: config.CloudinaryConfig{DefaultFolder: "custom-orders"},
		Order: config.OrderConfig{
			MaxFiles:         5,
			MaxFileSizeBytes: 10 * 1024 * 1024,
			DefaultListLimit: 50,
		},
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

func orderFile(name string, size int64) model.OrderFile {
	return model.OrderFile{Filename: name, Size: size, Reader: strings.NewReader("img")}
}

func customOrderRequest(files ...model.OrderFile) *model.CustomOrderRequest {
	return &model.CustomOrderRequest{
		CustomerName: "Ada Craft",
		Email:        "ada@example.com",
		Phone:        "+628123456",
		Category:     constant.CategoryCustom,
		Description:  "Walnut bookshelf, wall mounted",
		Timeline:     "6 weeks",
		Files:        files,
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	tests := []struct {
		name      string
		fields    fields
		req       *model.CreateOrderRequest
		mockCall  func(f fields)
		wantErr   bool
		wantErrTy constant.ErrorType
	}{
		{
			name: "success: order stored with stamped metadata",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			req: &model.CreateOrderRequest{
				CustomerName: "Ada Craft",
				Email:        "ada@example.com",
			},
			mockCall: func(f fields) {
				f.orderRepo.
					On("Insert", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: missing customer name",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			req: &model.CreateOrderRequest{
				Email: "ada@example.com",
			},
			wantErr:   true,
			wantErrTy: constant.ErrInvalidRequest,
		},
		{
			name: "error: missing email",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			req: &model.CreateOrderRequest{
				CustomerName: "Ada Craft",
			},
			wantErr:   true,
			wantErrTy: constant.ErrInvalidRequest,
		},
		{
			name: "error: repository Insert fails",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			req: &model.CreateOrderRequest{
				CustomerName: "Ada Craft",
				Email:        "ada@example.com",
			},
			mockCall: func(f fields) {
				f.orderRepo.
					On("Insert", mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).
					Once()
			},
			wantErr:   true,
			wantErrTy: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apporder.NewOrderApp(testConfig(), tt.fields.orderRepo, cloudinarymocks.NewImageService(t), nil)

			got, err := app.CreateOrder(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrType(t, err, tt.wantErrTy)
				return
			}

			if got.ID == "" {
				t.Fatal("order id not stamped")
			}
			if got.Status != constant.OrderStatusPending {
				t.Fatalf("status = %s, want %s", got.Status, constant.OrderStatusPending)
			}
			if got.CreatedAt == 0 || got.UpdatedAt != got.CreatedAt {
				t.Fatalf("timestamps = %d/%d, want equal and non-zero", got.CreatedAt, got.UpdatedAt)
			}
		})
	}
}

func TestOrderApp_SubmitCustomOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: all images uploaded then order stored", func(t *testing.T) {
		orderRepo := ordermocks.NewOrderRepository(t)
		images := cloudinarymocks.NewImageService(t)

		images.On("Upload", mock.Anything, "custom-orders", "a.jpg", mock.Anything).
			Return(&model.UploadResult{URL: "https://cdn/a.jpg", PublicID: "custom-orders/a"}, nil).
			Once()
		images.On("Upload", mock.Anything, "custom-orders", "b.jpg", mock.Anything).
			Return(&model.UploadResult{URL: "https://cdn/b.jpg", PublicID: "custom-orders/b"}, nil).
			Once()
		orderRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

		app := apporder.NewOrderApp(testConfig(), orderRepo, images, nil)

		got, err := app.SubmitCustomOrder(ctx, customOrderRequest(orderFile("a.jpg", 1024), orderFile("b.jpg", 1024)))
		if err != nil {
			t.Fatalf("SubmitCustomOrder() error = %v", err)
		}
		if len(got.Images) != 2 {
			t.Fatalf("images = %d, want 2", len(got.Images))
		}
		// Upload results keep their slot: refs stay aligned with the
		// submitted file order regardless of completion order.
		if got.Images[0].URL != "https://cdn/a.jpg" || got.Images[1].URL != "https://cdn/b.jpg" {
			t.Fatalf("image refs = %+v", got.Images)
		}
	})

	t.Run("error: no reference image attached", func(t *testing.T) {
		app := apporder.NewOrderApp(testConfig(), ordermocks.NewOrderRepository(t), cloudinarymocks.NewImageService(t), nil)

		_, err := app.SubmitCustomOrder(ctx, customOrderRequest())
		assertErrType(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: more files than the limit", func(t *testing.T) {
		app := apporder.NewOrderApp(testConfig(), ordermocks.NewOrderRepository(t), cloudinarymocks.NewImageService(t), nil)

		files := make([]model.OrderFile, 6)
		for i := range files {
			files[i] = orderFile("f.jpg", 1024)
		}
		_, err := app.SubmitCustomOrder(ctx, customOrderRequest(files...))
		assertErrType(t, err, constant.ErrTooManyFiles)
	})

	t.Run("error: file over the size limit", func(t *testing.T) {
		app := apporder.NewOrderApp(testConfig(), ordermocks.NewOrderRepository(t), cloudinarymocks.NewImageService(t), nil)

		_, err := app.SubmitCustomOrder(ctx, customOrderRequest(orderFile("big.jpg", 11*1024*1024)))
		assertErrType(t, err, constant.ErrFileTooLarge)
	})

	t.Run("error: upload failure aborts before the order is stored", func(t *testing.T) {
		orderRepo := ordermocks.NewOrderRepository(t)
		images := cloudinarymocks.NewImageService(t)

		images.On("Upload", mock.Anything, "custom-orders", "a.jpg", mock.Anything).
			Return(nil, errors.New("cdn rejected the file")).
			Once()

		app := apporder.NewOrderApp(testConfig(), orderRepo, images, nil)

		_, err := app.SubmitCustomOrder(ctx, customOrderRequest(orderFile("a.jpg", 1024)))
		assertErrType(t, err, constant.ErrUploadFailed)
		if !strings.Contains(err.Error(), "cdn rejected the file") {
			t.Fatalf("error = %q, want the upstream message surfaced", err.Error())
		}
		orderRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestOrderApp_ListOrders(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	tests := []struct {
		name     string
		fields   fields
		limit    int
		mockCall func(f fields)
		wantLen  int
		wantErr  bool
	}{
		{
			name: "success: explicit limit passed through",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			limit: 2,
			mockCall: func(f fields) {
				f.orderRepo.
					On("List", mock.Anything, 2).
					Return([]model.Order{{ID: "o2"}, {ID: "o1"}}, nil).
					Once()
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "success: non-positive limit falls back to the default",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			limit: 0,
			mockCall: func(f fields) {
				f.orderRepo.
					On("List", mock.Anything, 50).
					Return([]model.Order{}, nil).
					Once()
			},
			wantLen: 0,
			wantErr: false,
		},
		{
			name: "error: repository List fails",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			limit: 10,
			mockCall: func(f fields) {
				f.orderRepo.
					On("List", mock.Anything, 10).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apporder.NewOrderApp(testConfig(), tt.fields.orderRepo, cloudinarymocks.NewImageService(t), nil)

			got, err := app.ListOrders(context.Background(), tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListOrders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, constant.ErrInternal)
				return
			}
			if len(got.Orders) != tt.wantLen {
				t.Fatalf("orders = %d, want %d", len(got.Orders), tt.wantLen)
			}
		})
	}
}

func TestOrderApp_DeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		orderRepo := ordermocks.NewOrderRepository(t)
		orderRepo.On("Delete", mock.Anything, "o1").Return(nil).Once()

		app := apporder.NewOrderApp(testConfig(), orderRepo, cloudinarymocks.NewImageService(t), nil)
		if err := app.DeleteOrder(ctx, "o1"); err != nil {
			t.Fatalf("DeleteOrder() error = %v", err)
		}
	})

	t.Run("error: empty id", func(t *testing.T) {
		app := apporder.NewOrderApp(testConfig(), ordermocks.NewOrderRepository(t), cloudinarymocks.NewImageService(t), nil)
		assertErrType(t, app.DeleteOrder(ctx, ""), constant.ErrInvalidRequest)
	})

	t.Run("error: repository Delete fails", func(t *testing.T) {
		orderRepo := ordermocks.NewOrderRepository(t)
		orderRepo.On("Delete", mock.Anything, "o1").Return(errors.New("connection refused")).Once()

		app := apporder.NewOrderApp(testConfig(), orderRepo, cloudinarymocks.NewImageService(t), nil)
		assertErrType(t, app.DeleteOrder(ctx, "o1"), constant.ErrInternal)
	})
}
