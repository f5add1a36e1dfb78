package service

import (
	"context"
	"testing"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInput() ProductInput {
	price := int64(1500)
	return ProductInput{Name: "Stapler", Price: &price, Description: "Heavy duty stapler"}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid product", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil)

		product, err := svc.Create(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, "Stapler", product.Name)
		assert.Equal(t, int64(1500), product.Price)
	})

	t.Run("zero price is valid", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		input := validInput()
		zero := int64(0)
		input.Price = &zero

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil)

		product, err := svc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(0), product.Price)
	})

	t.Run("invalid input reports all failing fields", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		_, err := svc.Create(ctx, ProductInput{})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeValidation, svcErr.Code)
		assert.Len(t, svcErr.Fields, 3)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(models.ErrDuplicate)

		_, err := svc.Create(ctx, validInput())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConflict, svcErr.Code)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("overwrites mutable fields only", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		existing := &models.Product{ID: id, Name: "Old Name", Price: 100, Description: "old"}
		mockRepo.On("FindByID", ctx, id).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.ID == id && p.Name == "Stapler" && p.Price == 1500
		})).Return(nil)

		product, err := svc.Update(ctx, id, validInput())

		require.NoError(t, err)
		assert.Equal(t, "Stapler", product.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		mockRepo.On("FindByID", ctx, id).Return(nil, models.ErrNotFound)

		_, err := svc.Update(ctx, id, validInput())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeNotFound, svcErr.Code)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		_, err := svc.Update(ctx, id, ProductInput{Name: "ok"})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeValidation, svcErr.Code)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("existing product", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		mockRepo.On("Delete", ctx, id).Return(nil)

		require.NoError(t, svc.Delete(ctx, id))
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		svc := NewProductService(mockRepo)

		mockRepo.On("Delete", ctx, id).Return(models.ErrNotFound)

		err := svc.Delete(ctx, id)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeNotFound, svcErr.Code)
	})
}

func TestProductService_List(t *testing.T) {
	mockRepo := mocks.NewMockProductRepository(t)
	svc := NewProductService(mockRepo)
	ctx := context.Background()

	expected := []models.Product{
		{Name: "Pen", Price: 150},
		{Name: "Notebook", Price: 500},
	}
	mockRepo.On("FindAll", ctx).Return(expected, nil)

	products, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
