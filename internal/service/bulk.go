package service

import (
	"context"
	"errors"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository"
)

// Bulk result statuses
const (
	BulkStatusSuccess = "success"
	BulkStatusFailure = "failure"
)

// BulkFailure records a rejected batch item with its 0-based position
type BulkFailure struct {
	Errors  map[string]string `json:"errors"`
	Payload ProductInput      `json:"payload"`
	Index   int               `json:"index"`
}

// BulkResult partitions a batch into created products and failures.
// Status is "success" whenever at least one item was created, so callers
// must check ErrorCount regardless of the top-level status.
type BulkResult struct {
	Status       string           `json:"status"`
	Created      []models.Product `json:"created"`
	Failures     []BulkFailure    `json:"failures"`
	CreatedCount int              `json:"created_count"`
	ErrorCount   int              `json:"error_count"`
}

// BulkService ingests batches of candidate products
type BulkService struct {
	products repository.ProductRepository
}

// NewBulkService creates a new BulkService
func NewBulkService(products repository.ProductRepository) *BulkService {
	return &BulkService{products: products}
}

// BulkCreate validates each item independently and continues past
// failures. Items that pass validation but collide with an existing name
// are reported as failures on the name field rather than aborting the batch.
func (s *BulkService) BulkCreate(ctx context.Context, items []ProductInput) (*BulkResult, error) {
	result := &BulkResult{
		Created:  []models.Product{},
		Failures: []BulkFailure{},
	}

	for i, item := range items {
		if fieldErrors := ValidateProductInput(item); fieldErrors != nil {
			result.Failures = append(result.Failures, BulkFailure{
				Index:   i,
				Payload: item,
				Errors:  fieldErrors,
			})
			continue
		}

		product := models.Product{
			Name:        item.Name,
			Price:       *item.Price,
			Description: item.Description,
		}

		if err := s.products.Create(ctx, &product); err != nil {
			result.Failures = append(result.Failures, BulkFailure{
				Index:   i,
				Payload: item,
				Errors:  map[string]string{"name": "product could not be created: " + failureReason(err)},
			})
			continue
		}

		result.Created = append(result.Created, product)
	}

	result.CreatedCount = len(result.Created)
	result.ErrorCount = len(result.Failures)
	if result.CreatedCount > 0 {
		result.Status = BulkStatusSuccess
	} else {
		result.Status = BulkStatusFailure
	}

	return result, nil
}

func failureReason(err error) string {
	var se *ServiceError
	if errors.As(mapRepositoryError(err, "product"), &se) {
		return se.Message
	}
	return "internal error"
}
