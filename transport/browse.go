package transport

import (
	"net/http"
	"strconv"

	"github.com/hendrawans/marketplace/application/browse"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"github.com/hendrawans/marketplace/utils/errors"
)

const defaultMaxPrice = 1_000_000

// BrowseProducts handler
// @Summary Browse available products near the requesting user
// @Description Filters by name, category and price range; annotates each hit with the seller distance in km
// @Tags Browse
// @Produce json
// @Param user_id query string true "Requesting user ID"
// @Param name query string false "Name substring filter"
// @Param category query string false "Category filter: all, fashion, electronic, furniture, home_and_garden, books, sports" default(all)
// @Param limit query int false "Number of items to retrieve" default(10)
// @Param sort_by query string false "Sort by: nearest, newest, oldest, price_low, price_high" default(nearest)
// @Param min_price query number false "Minimum price" default(0)
// @Param max_price query number false "Maximum price" default(1000000)
// @Success 200 {object} model.BrowseResponse
// @Failure 404 {object} transport.Response
// @Router /browse/products [get]
func (s *RestHandler) BrowseProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userID := q.Get("user_id")
	if userID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := &model.BrowseRequest{
		UserID:   userID,
		Name:     q.Get("name"),
		Category: "all",
		Limit:    10,
		SortBy:   browse.SortNearest,
		MinPrice: 0,
		MaxPrice: defaultMaxPrice,
	}

	if v := q.Get("category"); v != "" {
		req.Category = v
	}
	if v := q.Get("sort_by"); v != "" {
		req.SortBy = v
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		req.Limit = n
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		req.MinPrice = f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		req.MaxPrice = f
	}

	res, err := s.BrowseApp.Browse(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
