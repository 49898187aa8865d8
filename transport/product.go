package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"github.com/hendrawans/marketplace/utils/errors"
	validatorx "github.com/hendrawans/marketplace/utils/validator"
)

// CreateProduct handler
// @Summary Create product
// @Description Create a product; id is generated when absent
// @Tags Product
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 200 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /product/createproduct [put]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Description Partially update a product; only supplied fields change
// @Tags Product
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param request body model.ProductPatch true "Product Patch"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /product/updateproduct/{product_id} [patch]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	var patch model.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.Update(ctx, productID, &patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Product
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /product/deleteproduct/{product_id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	if err := s.ProductApp.Delete(ctx, productID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"product_id": productID})
}

// GetProduct handler
// @Summary Get product
// @Tags Product
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /product/getproduct/{product_id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	res, err := s.ProductApp.Get(ctx, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProductsBySeller handler
// @Summary List a seller's products
// @Tags Product
// @Produce json
// @Param seller_id path string true "Seller ID"
// @Success 200 {object} transport.Response
// @Router /product/getproducts/seller/{seller_id} [get]
func (s *RestHandler) GetProductsBySeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sellerID := mux.Vars(r)["seller_id"]

	res, err := s.ProductApp.ListBySeller(ctx, sellerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
