package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/service"
)

// ProductListResponse wraps filtered results with their count
type ProductListResponse struct {
	Message  string           `json:"message,omitempty"`
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

// StatsResponse reports catalog-wide price aggregates
type StatsResponse struct {
	Count   int64   `json:"count"`
	Total   int64   `json:"total"`
	Min     int64   `json:"min"`
	Max     int64   `json:"max"`
	Average float64 `json:"average"`
}

// EmptyCatalogResponse is returned by stats endpoints when no products exist
type EmptyCatalogResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// TotalSalesResponse reports the catalog-wide price sum
type TotalSalesResponse struct {
	Total int64 `json:"total"`
}

// SearchProducts handles GET /products/search/?q=
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listResponse(products, ""))
}

// PriceRangeProducts handles GET /products/price-range/?min=&max=
func (h *Handler) PriceRangeProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	products, err := h.queries.PriceRange(r.Context(), query.Get("min"), query.Get("max"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listResponse(products, ""))
}

// ExpensiveProducts handles GET /products/expensive/?min_price=
func (h *Handler) ExpensiveProducts(w http.ResponseWriter, r *http.Request) {
	minPrice := service.DefaultExpensiveThreshold
	if raw := r.URL.Query().Get("min_price"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   service.ErrCodeNotNumeric,
				Message: "min_price must be numeric",
			})
			return
		}
		minPrice = parsed
	}

	products, err := h.queries.Expensive(r.Context(), minPrice)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	// An empty result carries an explicit message rather than a bare list
	message := ""
	if len(products) == 0 {
		message = fmt.Sprintf("no products found priced at or above %d", minPrice)
	}
	h.writeJSON(w, http.StatusOK, listResponse(products, message))
}

// CheapProducts handles GET /products/cheap/
func (h *Handler) CheapProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.Cheap(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listResponse(products, ""))
}

// LatestProducts handles GET /products/latest/?limit=
func (h *Handler) LatestProducts(w http.ResponseWriter, r *http.Request) {
	// Unparseable or absent limits fall through as 0, which the service
	// resets to its default.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.queries.Latest(r.Context(), limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listResponse(products, ""))
}

// ProductStats handles GET /products/stats/
func (h *Handler) ProductStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if stats.Count == 0 {
		h.writeJSON(w, http.StatusOK, EmptyCatalogResponse{
			Message: "no products available",
			Count:   0,
		})
		return
	}

	h.writeJSON(w, http.StatusOK, StatsResponse{
		Count:   stats.Count,
		Total:   stats.Total,
		Min:     stats.Min,
		Max:     stats.Max,
		Average: stats.Average,
	})
}

// TotalSales handles GET /total-sales/
func (h *Handler) TotalSales(w http.ResponseWriter, r *http.Request) {
	total, err := h.stats.TotalSales(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TotalSalesResponse{Total: total})
}

func listResponse(products []models.Product, message string) ProductListResponse {
	if products == nil {
		products = []models.Product{}
	}
	return ProductListResponse{
		Products: products,
		Count:    len(products),
		Message:  message,
	}
}
