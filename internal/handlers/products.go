package handlers

import (
	"net/http"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/service"
)

// ListProducts handles GET /products/
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	h.writeJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /products/
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req service.ProductInput
	if !h.decodeJSON(w, r, &req) {
		return
	}

	product, err := h.catalog.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/{id}/
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req service.ProductInput
	if !h.decodeJSON(w, r, &req) {
		return
	}

	product, err := h.catalog.Update(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id}/
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DiscountRequest carries the discount percentage to apply
type DiscountRequest struct {
	Discount int64 `json:"discount"`
}

// ApplyDiscount handles PUT /discount/{id}/
func (h *Handler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req DiscountRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.discounts.ApplyDiscount(r.Context(), id, req.Discount)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
