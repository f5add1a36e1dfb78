// Package repository provides data access layer implementations for the catalog API.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/benx421/catalog/internal/db"
	"github.com/benx421/catalog/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumPrices(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*models.PriceStats, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]models.Product, error)
	FindAbovePrice(ctx context.Context, minPrice int64) ([]models.Product, error)
	FindBelowPrice(ctx context.Context, maxPrice int64) ([]models.Product, error)
	FindLatest(ctx context.Context, limit int) ([]models.Product, error)
}

// productRepository implements ProductRepository
type productRepository struct {
	db db.Queryer
}

// NewProductRepository creates a new ProductRepository bound to a pool or transaction
func NewProductRepository(q db.Queryer) ProductRepository {
	return &productRepository{db: q}
}

const productColumns = "id, name, price, description, created_at"

// Create inserts a product and fills in the store-assigned id and timestamp
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, price, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, product.Name, product.Price, product.Description).
		Scan(&product.ID, &product.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("product name %q: %w", product.Name, models.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID retrieves a product by its UUID
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindByIDForUpdate retrieves a product with a row lock; only meaningful
// inside a transaction.
func (r *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves every product, newest first
func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

// Update persists name, price, and description; created_at is never mutated
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, description = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, product.ID, product.Name, product.Price, product.Description)
	if isUniqueViolation(err) {
		return fmt.Errorf("product name %q: %w", product.Name, models.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return requireRow(result)
}

// UpdatePrice persists only the price column
func (r *productRepository) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	query := `UPDATE products SET price = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, price)
	if err != nil {
		return fmt.Errorf("failed to update product price: %w", err)
	}

	return requireRow(result)
}

// Delete removes a product by id
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return requireRow(result)
}

// SumPrices returns the sum of all product prices; 0 for an empty catalog
func (r *productRepository) SumPrices(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(price), 0) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum product prices: %w", err)
	}

	return total, nil
}

// Stats aggregates the price column. Average is left for the caller to
// derive so rounding policy stays in one place.
func (r *productRepository) Stats(ctx context.Context) (*models.PriceStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(price), 0),
		       COALESCE(MIN(price), 0),
		       COALESCE(MAX(price), 0)
		FROM products
	`

	var stats models.PriceStats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.Count, &stats.Total, &stats.Min, &stats.Max)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product prices: %w", err)
	}

	return &stats, nil
}

// Search matches the query case-insensitively as a substring of name or description
func (r *productRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := "%" + escapeLike(query) + "%"
	stmt := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY created_at DESC
	`

	return r.queryProducts(ctx, stmt, pattern)
}

// FindByPriceRange returns products with price in [minPrice, maxPrice]
func (r *productRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE price >= $1 AND price <= $2
		ORDER BY price ASC
	`

	return r.queryProducts(ctx, query, minPrice, maxPrice)
}

// FindAbovePrice returns products with price >= minPrice, most expensive first
func (r *productRepository) FindAbovePrice(ctx context.Context, minPrice int64) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE price >= $1
		ORDER BY price DESC
	`

	return r.queryProducts(ctx, query, minPrice)
}

// FindBelowPrice returns products with price < maxPrice, cheapest first
func (r *productRepository) FindBelowPrice(ctx context.Context, maxPrice int64) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE price < $1
		ORDER BY price ASC
	`

	return r.queryProducts(ctx, query, maxPrice)
}

// FindLatest returns the most recently created products
func (r *productRepository) FindLatest(ctx context.Context, limit int) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
		LIMIT $1
	`

	return r.queryProducts(ctx, query, limit)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable here

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *productRepository) scanOne(row *sql.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return &p, nil
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search text
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
