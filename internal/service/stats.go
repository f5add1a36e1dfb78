package service

import (
	"context"
	"math"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository"
)

// StatsService computes aggregates over the product price column
type StatsService struct {
	products repository.ProductRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(products repository.ProductRepository) *StatsService {
	return &StatsService{products: products}
}

// TotalSales returns the sum of all product prices; 0 for an empty catalog
func (s *StatsService) TotalSales(ctx context.Context) (int64, error) {
	total, err := s.products.SumPrices(ctx)
	if err != nil {
		return 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to compute total sales",
			Err:     err,
		}
	}

	return total, nil
}

// Stats returns count, total, min, max, and the average rounded to two
// decimals. A Count of 0 signals the empty catalog; the average is never
// computed in that case.
func (s *StatsService) Stats(ctx context.Context) (*models.PriceStats, error) {
	stats, err := s.products.Stats(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to compute price statistics",
			Err:     err,
		}
	}

	if stats.Count > 0 {
		stats.Average = math.Round(float64(stats.Total)/float64(stats.Count)*100) / 100
	}

	return stats, nil
}
