// Package service implements the catalog's business logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository"
	"github.com/google/uuid"
)

// ProductService handles product CRUD operations
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns every product in the catalog
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to list products",
			Err:     err,
		}
	}

	return products, nil
}

// Create validates and stores a new product
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if fieldErrors := ValidateProductInput(input); fieldErrors != nil {
		return nil, &ServiceError{
			Code:    ErrCodeValidation,
			Message: "invalid product",
			Fields:  fieldErrors,
		}
	}

	product := &models.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Description: input.Description,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, mapRepositoryError(err, "product")
	}

	return product, nil
}

// Update validates and persists changes to an existing product.
// The creation timestamp is never touched.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	if fieldErrors := ValidateProductInput(input); fieldErrors != nil {
		return nil, &ServiceError{
			Code:    ErrCodeValidation,
			Message: "invalid product",
			Fields:  fieldErrors,
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "product")
	}

	product.Name = input.Name
	product.Price = *input.Price
	product.Description = input.Description

	if err := s.products.Update(ctx, product); err != nil {
		return nil, mapRepositoryError(err, "product")
	}

	return product, nil
}

// Delete removes a product by id
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "product")
	}

	return nil
}

// mapRepositoryError translates repository sentinels into the service taxonomy
func mapRepositoryError(err error, entity string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return &ServiceError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("%s not found", entity),
			Err:     err,
		}
	case errors.Is(err, models.ErrDuplicate):
		return &ServiceError{
			Code:    ErrCodeConflict,
			Message: fmt.Sprintf("%s already exists", entity),
			Err:     err,
		}
	default:
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to persist %s", entity),
			Err:     err,
		}
	}
}
