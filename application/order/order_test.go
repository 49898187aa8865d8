package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apporder "github.com/hendrawans/marketplace/application/order"
	"github.com/hendrawans/marketplace/constant"
	cartmocks "github.com/hendrawans/marketplace/mocks/repository/cart"
	ordermocks "github.com/hendrawans/marketplace/mocks/repository/order"
	productmocks "github.com/hendrawans/marketplace/mocks/repository/product"
	usermocks "github.com/hendrawans/marketplace/mocks/repository/user"
	"github.com/hendrawans/marketplace/model"
	cerr "github.com/hendrawans/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func availableProduct(id string, price float64) model.Product {
	return model.Product{
		ID:     id,
		Name:   "product " + id,
		Price:  price,
		Status: constant.ProductStatusAvailable,
	}
}

func TestOrderApp_Confirm(t *testing.T) {
	type fields struct {
		userRepo    *usermocks.UserRepository
		productRepo *productmocks.ProductRepository
		cartRepo    *cartmocks.CartRepository
		orderRepo   *ordermocks.OrderRepository
	}
	type args struct {
		ctx context.Context
		req *model.OrderConfirmRequest
	}

	tests := []struct {
		name      string
		args      args
		mockCall  func(f fields)
		wantTotal string
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "error: user not found",
			args: args{
				ctx: context.Background(),
				req: &model.OrderConfirmRequest{UserID: "ghost", ProductIDs: []string{"p1"}, Location: "jakarta"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: partially unavailable selection writes nothing",
			args: args{
				ctx: context.Background(),
				req: &model.OrderConfirmRequest{UserID: "u1", ProductIDs: []string{"p1", "p2"}, Location: "jakarta"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(&model.User{ID: "u1"}, nil).Once()
				// Only one of the two requested products is still available.
				f.productRepo.On("GetAvailableByIDs", mock.Anything, []string{"p1", "p2"}).
					Return([]model.Product{availableProduct("p1", 10)}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductsUnavailable,
		},
		{
			name: "success: order created and cascades applied",
			args: args{
				ctx: context.Background(),
				req: &model.OrderConfirmRequest{UserID: "u1", ProductIDs: []string{"p1", "p2"}, Location: "jakarta"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(&model.User{ID: "u1"}, nil).Once()
				f.productRepo.On("GetAvailableByIDs", mock.Anything, []string{"p1", "p2"}).
					Return([]model.Product{availableProduct("p1", 10), availableProduct("p2", 20)}, nil).Once()
				f.orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return o.UserID == "u1" && o.TotalAmount == "30" &&
						o.Status == constant.OrderStatusConfirmed && o.OrderID != ""
				})).Return(nil).Once()
				f.productRepo.On("SetStatusByIDs", mock.Anything, []string{"p1", "p2"}, constant.ProductStatusUnavailable).
					Return(nil).Once()
				f.cartRepo.On("MarkSold", mock.Anything, "u1", []string{"p1", "p2"}).Return(nil).Once()
			},
			wantTotal: "30",
		},
		{
			name: "error: cascade failure after commit is internal",
			args: args{
				ctx: context.Background(),
				req: &model.OrderConfirmRequest{UserID: "u1", ProductIDs: []string{"p1"}, Location: "jakarta"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(&model.User{ID: "u1"}, nil).Once()
				f.productRepo.On("GetAvailableByIDs", mock.Anything, []string{"p1"}).
					Return([]model.Product{availableProduct("p1", 10)}, nil).Once()
				f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				f.productRepo.On("SetStatusByIDs", mock.Anything, []string{"p1"}, constant.ProductStatusUnavailable).
					Return(errors.New("write failed")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:    usermocks.NewUserRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			app := apporder.NewOrderApp(f.userRepo, f.productRepo, f.cartRepo, f.orderRepo, nil)

			got, err := app.Confirm(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Confirm() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.TotalAmount != tt.wantTotal {
				t.Fatalf("Confirm() total = %s, want %s", got.TotalAmount, tt.wantTotal)
			}
			if got.OrderID == "" {
				t.Fatalf("Confirm() order id is empty")
			}
		})
	}
}

func TestOrderApp_ListByUser(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}

	now := time.Now().UTC()
	stored := []model.Order{
		{OrderID: "o2", UserID: "u1", TotalAmount: "20", Timestamp: now},
		{OrderID: "o1", UserID: "u1", TotalAmount: "10", Timestamp: now.Add(-time.Hour)},
	}

	tests := []struct {
		name     string
		userID   string
		mockCall func(f fields)
		want     []model.Order
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: orders returned most recent first",
			userID: "u1",
			mockCall: func(f fields) {
				f.orderRepo.On("ListByUser", mock.Anything, "u1").Return(stored, nil).Once()
			},
			want: stored,
		},
		{
			name:   "error: no orders reported as not found",
			userID: "u2",
			mockCall: func(f fields) {
				f.orderRepo.On("ListByUser", mock.Anything, "u2").Return([]model.Order{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{orderRepo: ordermocks.NewOrderRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			app := apporder.NewOrderApp(
				usermocks.NewUserRepository(t),
				productmocks.NewProductRepository(t),
				cartmocks.NewCartRepository(t),
				f.orderRepo,
				nil,
			)

			got, err := app.ListByUser(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListByUser() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if len(got) != len(tt.want) || got[0].OrderID != tt.want[0].OrderID {
				t.Fatalf("ListByUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
