package browse

import (
	"context"
	"sort"
	"strconv"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	productrepo "github.com/hendrawans/marketplace/repository/product"
	userrepo "github.com/hendrawans/marketplace/repository/user"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/geo"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Sort keys accepted by Browse. "latest" is an accepted alias for newest.
const (
	SortNearest   = "nearest"
	SortNewest    = "newest"
	SortLatest    = "latest"
	SortOldest    = "oldest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

type BrowseApp interface {
	Browse(ctx context.Context, req *model.BrowseRequest) (*model.BrowseResponse, error)
}

type browseAppImpl struct {
	userRepo    userrepo.UserRepository
	productRepo productrepo.ProductRepository
}

func NewBrowseApp(userRepo userrepo.UserRepository, productRepo productrepo.ProductRepository) BrowseApp {
	return &browseAppImpl{userRepo: userRepo, productRepo: productRepo}
}

// Browse returns available products filtered by the request, annotated with
// the distance from the requesting user to each product's seller, sorted by
// the requested key and truncated to the limit. Candidates whose seller
// cannot be resolved are dropped, not errored.
func (s *browseAppImpl) Browse(ctx context.Context, req *model.BrowseRequest) (*model.BrowseResponse, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Error("[Browse] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	userLat, userLon, ok := parseCoords(user)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	query := &model.ProductQuery{
		Status:   constant.ProductStatusAvailable,
		Name:     req.Name,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
	if req.Category != "" && req.Category != "all" {
		query.Category = req.Category
	}

	candidates, err := s.productRepo.Search(ctx, query)
	if err != nil {
		logger.Error("[Browse] err productRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	annotated := make([]model.AnnotatedProduct, 0, len(candidates))
	for _, product := range candidates {
		seller, err := s.userRepo.GetByID(ctx, product.SellerID)
		if err != nil {
			logger.Error("[Browse] err resolve seller", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if seller == nil {
			continue
		}
		sellerLat, sellerLon, ok := parseCoords(seller)
		if !ok {
			continue
		}

		annotated = append(annotated, model.AnnotatedProduct{
			Product:    product,
			DistanceKM: geo.RoundKm(geo.Haversine(userLat, userLon, sellerLat, sellerLon)),
		})
	}

	sortProducts(annotated, req.SortBy)

	if req.Limit > 0 && len(annotated) > req.Limit {
		annotated = annotated[:req.Limit]
	}

	return &model.BrowseResponse{
		Success:  true,
		Count:    len(annotated),
		Products: annotated,
	}, nil
}

// sortProducts orders in place by the selected key. The sort is stable so
// ties keep the store's secondary order.
func sortProducts(products []model.AnnotatedProduct, sortBy string) {
	switch sortBy {
	case SortNewest, SortLatest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	default: // nearest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DistanceKM < products[j].DistanceKM
		})
	}
}

func parseCoords(user *model.User) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(user.Latitude, 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(user.Longitude, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
