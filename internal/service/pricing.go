package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/benx421/catalog/internal/db"
	"github.com/benx421/catalog/internal/repository"
	"github.com/google/uuid"
)

// DiscountResult reports the outcome of a discount application
type DiscountResult struct {
	Product         string `json:"product"`
	OriginalPrice   int64  `json:"original_price"`
	DiscountedPrice int64  `json:"discounted_price"`
}

// DiscountService applies percentage discounts to stored product prices
type DiscountService struct {
	db *db.DB
}

// NewDiscountService creates a new DiscountService
func NewDiscountService(database *db.DB) *DiscountService {
	return &DiscountService{db: database}
}

// ApplyDiscount reduces a product's price by the given percentage and
// persists the result. The read-modify-write runs under a row lock so two
// concurrent discounts compound sequentially instead of losing an update.
// Discounts always compound on the current stored price; no history is kept.
func (s *DiscountService) ApplyDiscount(ctx context.Context, id uuid.UUID, percent int64) (*DiscountResult, error) {
	if err := ValidateDiscount(percent); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidDiscount,
			Message: err.Error(),
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txProductRepo := repository.NewProductRepository(tx)

	result, err := s.performDiscount(ctx, txProductRepo, id, percent)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return result, nil
}

// performDiscount contains the core discount business logic
func (s *DiscountService) performDiscount(
	ctx context.Context,
	productRepo repository.ProductRepository,
	id uuid.UUID,
	percent int64,
) (*DiscountResult, error) {
	product, err := productRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "product")
	}

	// Equivalent to floor(price * (1 - percent/100)) for non-negative
	// prices; the discounted price stays integral and never exceeds the
	// original.
	originalPrice := product.Price
	discountedPrice := originalPrice * (100 - percent) / 100

	if err := productRepo.UpdatePrice(ctx, id, discountedPrice); err != nil {
		return nil, mapRepositoryError(err, "product")
	}

	return &DiscountResult{
		Product:         product.Name,
		OriginalPrice:   originalPrice,
		DiscountedPrice: discountedPrice,
	}, nil
}
