package browse_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appbrowse "github.com/hendrawans/marketplace/application/browse"
	"github.com/hendrawans/marketplace/constant"
	productmocks "github.com/hendrawans/marketplace/mocks/repository/product"
	usermocks "github.com/hendrawans/marketplace/mocks/repository/user"
	"github.com/hendrawans/marketplace/model"
	cerr "github.com/hendrawans/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func makeUser(id, lat, lon string) *model.User {
	return &model.User{
		ID:        id,
		Name:      id,
		Latitude:  lat,
		Longitude: lon,
	}
}

func makeProduct(id string, price float64, sellerID string, createdAt time.Time) model.Product {
	return model.Product{
		ID:        id,
		Name:      "product " + id,
		SellerID:  sellerID,
		Category:  "electronic",
		Price:     price,
		Status:    constant.ProductStatusAvailable,
		CreatedAt: createdAt,
	}
}

func TestBrowseApp_Browse(t *testing.T) {
	type fields struct {
		userRepo    *usermocks.UserRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		req *model.BrowseRequest
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		args      args
		mockCall  func(f fields)
		wantIDs   []string
		wantErr   bool
		errCode   constant.ErrorType
		wantCount int
	}{
		{
			name: "error: requesting user not found",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "ghost", Category: "all", Limit: 10, SortBy: "nearest", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: requesting user has unparsable coordinates",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 10, SortBy: "nearest", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "not-a-number", "0"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "success: price_low sorts ascending by price",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 10, SortBy: "price_low", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
				f.productRepo.On("Search", mock.Anything, mock.MatchedBy(func(q *model.ProductQuery) bool {
					return q.Status == constant.ProductStatusAvailable && q.Category == "" && q.MaxPrice == 1000000
				})).Return([]model.Product{
					makeProduct("p30", 30, "s1", base),
					makeProduct("p10", 10, "s1", base),
					makeProduct("p20", 20, "s1", base),
				}, nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "s1").Return(makeUser("s1", "0", "1"), nil).Times(3)
			},
			wantIDs:   []string{"p10", "p20", "p30"},
			wantCount: 3,
		},
		{
			name: "success: unresolvable seller is dropped silently",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 10, SortBy: "nearest", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
				f.productRepo.On("Search", mock.Anything, mock.Anything).Return([]model.Product{
					makeProduct("kept", 10, "s1", base),
					makeProduct("dropped", 20, "missing", base),
				}, nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "s1").Return(makeUser("s1", "0", "1"), nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()
			},
			wantIDs:   []string{"kept"},
			wantCount: 1,
		},
		{
			name: "success: nearest sorts ascending by seller distance",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 10, SortBy: "nearest", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
				f.productRepo.On("Search", mock.Anything, mock.Anything).Return([]model.Product{
					makeProduct("far", 10, "sFar", base),
					makeProduct("near", 20, "sNear", base),
				}, nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "sFar").Return(makeUser("sFar", "0", "10"), nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "sNear").Return(makeUser("sNear", "0", "1"), nil).Once()
			},
			wantIDs:   []string{"near", "far"},
			wantCount: 2,
		},
		{
			name: "success: newest sorts descending by creation time",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 10, SortBy: "newest", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
				f.productRepo.On("Search", mock.Anything, mock.Anything).Return([]model.Product{
					makeProduct("old", 10, "s1", base.Add(-time.Hour)),
					makeProduct("new", 20, "s1", base),
				}, nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "s1").Return(makeUser("s1", "0", "1"), nil).Times(2)
			},
			wantIDs:   []string{"new", "old"},
			wantCount: 2,
		},
		{
			name: "success: result truncated to limit",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 2, SortBy: "price_low", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
				f.productRepo.On("Search", mock.Anything, mock.Anything).Return([]model.Product{
					makeProduct("a", 3, "s1", base),
					makeProduct("b", 1, "s1", base),
					makeProduct("c", 2, "s1", base),
				}, nil).Once()
				f.userRepo.On("GetByID", mock.Anything, "s1").Return(makeUser("s1", "0", "1"), nil).Times(3)
			},
			wantIDs:   []string{"b", "c"},
			wantCount: 2,
		},
		{
			name: "error: store fault surfaces as internal",
			args: args{
				ctx: context.Background(),
				req: &model.BrowseRequest{UserID: "u1", Category: "all", Limit: 10, SortBy: "nearest", MaxPrice: 1000000},
			},
			mockCall: func(f fields) {
				f.userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
				f.productRepo.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
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
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			app := appbrowse.NewBrowseApp(f.userRepo, f.productRepo)

			got, err := app.Browse(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Browse() error = %v, wantErr %v", err, tt.wantErr)
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

			if !got.Success {
				t.Fatalf("Browse() success = false, want true")
			}
			if got.Count != tt.wantCount {
				t.Fatalf("Browse() count = %d, want %d", got.Count, tt.wantCount)
			}
			gotIDs := make([]string, 0, len(got.Products))
			for _, p := range got.Products {
				gotIDs = append(gotIDs, p.ID)
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("Browse() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("Browse() ids = %v, want %v", gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestBrowseApp_DistanceAnnotation(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	productRepo := productmocks.NewProductRepository(t)

	userRepo.On("GetByID", mock.Anything, "u1").Return(makeUser("u1", "0", "0"), nil).Once()
	productRepo.On("Search", mock.Anything, mock.Anything).Return([]model.Product{
		makeProduct("p1", 10, "s1", time.Now()),
	}, nil).Once()
	// A seller a quarter great circle away.
	userRepo.On("GetByID", mock.Anything, "s1").Return(makeUser("s1", "0", "90"), nil).Once()

	app := appbrowse.NewBrowseApp(userRepo, productRepo)
	got, err := app.Browse(context.Background(), &model.BrowseRequest{
		UserID: "u1", Category: "all", Limit: 10, SortBy: "nearest", MaxPrice: 1000000,
	})
	if err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	if len(got.Products) != 1 {
		t.Fatalf("Browse() products = %d, want 1", len(got.Products))
	}
	d := got.Products[0].DistanceKM
	if d < 10007 || d > 10008 {
		t.Fatalf("distance_km = %v, want ~10007.5", d)
	}
}
