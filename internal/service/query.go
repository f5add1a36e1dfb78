package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository"
)

// Query thresholds and limits
const (
	// DefaultExpensiveThreshold is the minimum price used by Expensive
	// when the caller provides none.
	DefaultExpensiveThreshold int64 = 50000

	// CheapThreshold is the fixed upper bound used by Cheap.
	CheapThreshold int64 = 30000

	// DefaultLatestLimit is the result count used by Latest when the
	// requested limit is absent or below 1.
	DefaultLatestLimit = 5

	// MaxLatestLimit caps the result count of Latest.
	MaxLatestLimit = 100
)

// QueryService handles keyword search and price filtering
type QueryService struct {
	products repository.ProductRepository
}

// NewQueryService creates a new QueryService
func NewQueryService(products repository.ProductRepository) *QueryService {
	return &QueryService{products: products}
}

// Expensive returns products priced at or above minPrice
func (s *QueryService) Expensive(ctx context.Context, minPrice int64) ([]models.Product, error) {
	products, err := s.products.FindAbovePrice(ctx, minPrice)
	if err != nil {
		return nil, queryError(err)
	}

	return products, nil
}

// Cheap returns products priced under the fixed threshold, cheapest first
func (s *QueryService) Cheap(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindBelowPrice(ctx, CheapThreshold)
	if err != nil {
		return nil, queryError(err)
	}

	return products, nil
}

// Search matches the trimmed query case-insensitively against product name
// or description. An empty query is rejected before touching the store.
func (s *QueryService) Search(ctx context.Context, query string) ([]models.Product, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, &ServiceError{
			Code:    ErrCodeMissingQuery,
			Message: "search query is required",
		}
	}

	products, err := s.products.Search(ctx, trimmed)
	if err != nil {
		return nil, queryError(err)
	}

	return products, nil
}

// PriceRange returns products with price in [min, max]. Both bounds are
// required, must parse as integers, and min must not exceed max; violations
// fail before any query runs.
func (s *QueryService) PriceRange(ctx context.Context, minRaw, maxRaw string) ([]models.Product, error) {
	if strings.TrimSpace(minRaw) == "" || strings.TrimSpace(maxRaw) == "" {
		return nil, &ServiceError{
			Code:    ErrCodeMissingBounds,
			Message: "both min and max prices are required",
		}
	}

	minPrice, err := strconv.ParseInt(strings.TrimSpace(minRaw), 10, 64)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotNumeric,
			Message: "min price must be numeric",
		}
	}

	maxPrice, err := strconv.ParseInt(strings.TrimSpace(maxRaw), 10, 64)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotNumeric,
			Message: "max price must be numeric",
		}
	}

	if minPrice > maxPrice {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRange,
			Message: "min price cannot exceed max price",
		}
	}

	products, err := s.products.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, queryError(err)
	}

	return products, nil
}

// Latest returns the newest products. The limit policy is asymmetric on
// purpose: values below 1 silently reset to the default, values above the
// cap clamp to it.
func (s *QueryService) Latest(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultLatestLimit
	} else if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}

	products, err := s.products.FindLatest(ctx, limit)
	if err != nil {
		return nil, queryError(err)
	}

	return products, nil
}

func queryError(err error) error {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "failed to query products",
		Err:     err,
	}
}
