package handlers

import (
	"net/http"

	"github.com/benx421/catalog/internal/service"
)

// BulkCreateRequest carries the batch of candidate products
type BulkCreateRequest struct {
	Products []service.ProductInput `json:"products"`
}

// BulkCreateProducts handles POST /products/bulk/
//
// The batch reports "success" whenever at least one item was created, even
// with partial failures; callers must check error_count regardless of the
// top-level status.
func (h *Handler) BulkCreateProducts(w http.ResponseWriter, r *http.Request) {
	var req BulkCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if len(req.Products) == 0 {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   service.ErrCodeValidation,
			Message: "products list is required",
		})
		return
	}

	result, err := h.bulk.BulkCreate(r.Context(), req.Products)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	status := http.StatusCreated
	if result.CreatedCount == 0 {
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, result)
}
